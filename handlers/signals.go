package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"traffic-management-api/models"
	"traffic-management-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SignalLiveChannel is the Redis pub/sub channel carrying signal state
// changes to websocket subscribers.
const SignalLiveChannel = "traffic:signals:live"

type SignalsHandler struct {
	db    *gorm.DB
	cache *services.CacheService
}

func NewSignalsHandler(db *gorm.DB, cache *services.CacheService) *SignalsHandler {
	return &SignalsHandler{db: db, cache: cache}
}

type UpdateSignalRequest struct {
	SignalState string `json:"signal_state"`
}

func (h *SignalsHandler) UpdateState(c *gin.Context) {
	var req UpdateSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SignalState == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Signal state is required"})
		return
	}

	signalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  404,
			"message": "Signal ID not found",
		})
		return
	}

	res := h.db.Model(&models.TrafficSignal{}).
		Where("signal_id = ?", signalID).
		Update("signal_state", req.SignalState)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  500,
			"message": "Database error",
			"error":   res.Error.Error(),
		})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  404,
			"message": "Signal ID not found",
		})
		return
	}

	go h.cache.Publish(context.Background(), SignalLiveChannel, gin.H{
		"signal_id":    signalID,
		"signal_state": req.SignalState,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":      "Traffic signal updated successfully",
		"signal_state": req.SignalState,
	})
}

func (h *SignalsHandler) Delete(c *gin.Context) {
	signalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  404,
			"message": "Signal ID not found",
		})
		return
	}

	var signal models.TrafficSignal
	if err := h.db.Where("signal_id = ?", signalID).First(&signal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  404,
				"message": "Signal ID not found",
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

	if err := h.db.Delete(&signal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  500,
			"message": "Database error",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Traffic signal deleted successfully"})
}
