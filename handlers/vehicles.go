package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"traffic-management-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VehiclesHandler struct {
	db *gorm.DB
}

func NewVehiclesHandler(db *gorm.DB) *VehiclesHandler {
	return &VehiclesHandler{db: db}
}

type RegisterVehicleRequest struct {
	VehicleNumber string `json:"vehicle_number"`
	OwnerName     string `json:"owner_name"`
	VehicleType   string `json:"vehicle_type"`
}

func (h *VehiclesHandler) Register(c *gin.Context) {
	var req RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.VehicleNumber == "" || req.OwnerName == "" || req.VehicleType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "vehicle_number, owner_name, and vehicle_type are required",
		})
		return
	}

	vehicle := models.Vehicle{
		VehicleNumber: req.VehicleNumber,
		OwnerName:     req.OwnerName,
		VehicleType:   req.VehicleType,
	}
	if err := h.db.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  500,
			"message": "Database error",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Vehicle registered successfully",
		"vehicle_id": vehicle.VehicleID,
	})
}

func (h *VehiclesHandler) GetByID(c *gin.Context) {
	// Non-numeric ids can never match an integer key; answering 404
	// here keeps Postgres from rejecting the cast with a query error.
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  404,
			"message": "Vehicle not found",
		})
		return
	}

	var vehicle models.Vehicle
	if err := h.db.Where("vehicle_id = ?", vehicleID).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  404,
				"message": "Vehicle not found",
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

	c.JSON(http.StatusOK, vehicle)
}
