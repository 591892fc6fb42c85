package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"traffic-management-api/models"
	"traffic-management-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ViolationsHandler struct {
	db    *gorm.DB
	cache *services.CacheService
}

func NewViolationsHandler(db *gorm.DB, cache *services.CacheService) *ViolationsHandler {
	return &ViolationsHandler{db: db, cache: cache}
}

type GenerateViolationRequest struct {
	VehicleID     uint    `json:"vehicle_id"`
	SignalID      uint    `json:"signal_id"`
	ViolationType string  `json:"violation_type"`
	FineAmount    float64 `json:"fine_amount"`
}

func (h *ViolationsHandler) Generate(c *gin.Context) {
	var req GenerateViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.VehicleID == 0 || req.SignalID == 0 || req.ViolationType == "" || req.FineAmount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please insert all mandatory data"})
		return
	}

	violation := models.Violation{
		VehicleID:     req.VehicleID,
		SignalID:      req.SignalID,
		ViolationType: req.ViolationType,
		FineAmount:    req.FineAmount,
	}
	if err := h.db.Create(&violation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  500,
			"message": "Database error",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Violation report generated",
		"violation_id": violation.ViolationID,
	})
}

func (h *ViolationsHandler) GetByID(c *gin.Context) {
	violationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  404,
			"message": "Violation not found",
		})
		return
	}
	cacheKey := fmt.Sprintf("violations:report:%d", violationID)

	var cached models.ViolationReport
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.ViolationID != 0 {
		c.JSON(http.StatusOK, cached)
		return
	}

	var report models.ViolationReport
	err = h.db.Model(&models.Violation{}).
		Select("violations.violation_id, vehicles.vehicle_number, violations.violation_type, violations.fine_amount").
		Joins("JOIN vehicles ON vehicles.vehicle_id = violations.vehicle_id").
		Where("violations.violation_id = ?", violationID).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  404,
				"message": "Violation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  500,
			"message": "Database error",
			"error":   err.Error(),
		})
		return
	}

	go h.cache.Set(context.Background(), cacheKey, report, 30*time.Second)

	c.JSON(http.StatusOK, report)
}

// List returns violations newest-first with cursor pagination. An
// optional vehicle_id query narrows to one vehicle.
func (h *ViolationsHandler) List(c *gin.Context) {
	p := ParsePagination(c)

	query := h.db.Model(&models.Violation{}).Order("violation_id DESC").Limit(p.Limit + 1)
	if p.Before != nil {
		query = query.Where("violation_id < ?", *p.Before)
	}
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		vid, err := strconv.ParseUint(vehicleID, 10, 64)
		if err != nil || vid == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id parameter, must be a positive integer"})
			return
		}
		query = query.Where("vehicle_id = ?", vid)
	}

	var rows []models.Violation
	if err := query.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  500,
			"message": "Database error",
			"error":   err.Error(),
		})
		return
	}

	hasMore := len(rows) > p.Limit
	if hasMore {
		rows = rows[:p.Limit]
	}

	var nextCursor string
	if hasMore && len(rows) > 0 {
		nextCursor = strconv.FormatUint(uint64(rows[len(rows)-1].ViolationID), 10)
	}

	c.JSON(http.StatusOK, CursorResponse{Data: rows, NextCursor: nextCursor, HasMore: hasMore})
}
