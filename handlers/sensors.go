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

type SensorsHandler struct {
	db    *gorm.DB
	cache *services.CacheService
}

func NewSensorsHandler(db *gorm.DB, cache *services.CacheService) *SensorsHandler {
	return &SensorsHandler{db: db, cache: cache}
}

func sensorCacheKey(sensorID uint64) string {
	return fmt.Sprintf("sensors:data:%d", sensorID)
}

func (h *SensorsHandler) GetData(c *gin.Context) {
	sensorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  404,
			"message": "Sensor ID not found",
		})
		return
	}
	cacheKey := sensorCacheKey(sensorID)

	var cached models.SensorReading
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.SensorID != 0 {
		c.JSON(http.StatusOK, cached)
		return
	}

	var reading models.SensorReading
	if err := h.db.Where("sensor_id = ?", sensorID).First(&reading).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  404,
				"message": "Sensor ID not found",
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

	go h.cache.Set(context.Background(), cacheKey, reading, 5*time.Second)

	c.JSON(http.StatusOK, reading)
}

type AdjustSensorRequest struct {
	TrafficCondition string `json:"traffic_condition"`
}

func (h *SensorsHandler) AdjustCondition(c *gin.Context) {
	var req AdjustSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TrafficCondition == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Traffic condition field is required"})
		return
	}

	sensorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sensor ID not found"})
		return
	}

	res := h.db.Model(&models.SensorReading{}).
		Where("sensor_id = ?", sensorID).
		Update("traffic_condition", req.TrafficCondition)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  500,
			"message": "Database error",
			"error":   res.Error.Error(),
		})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sensor ID not found"})
		return
	}

	go h.cache.Delete(context.Background(), sensorCacheKey(sensorID))

	c.JSON(http.StatusOK, gin.H{
		"message":           "Traffic condition adjusted successfully",
		"traffic_condition": req.TrafficCondition,
	})
}
