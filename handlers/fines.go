package handlers

import (
	"net/http"
	"strconv"

	"traffic-management-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FinesHandler struct {
	db *gorm.DB
}

func NewFinesHandler(db *gorm.DB) *FinesHandler {
	return &FinesHandler{db: db}
}

type PayFineRequest struct {
	PaymentDate string `json:"payment_date"`
}

// Pay marks a fine PAID and records the payment date. Re-paying an
// already paid fine just reconfirms the PAID state.
func (h *FinesHandler) Pay(c *gin.Context) {
	var req PayFineRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment date field is required"})
		return
	}

	fineID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  404,
			"message": "Fine ID not found",
		})
		return
	}

	res := h.db.Model(&models.Fine{}).
		Where("fine_id = ?", fineID).
		Updates(map[string]interface{}{
			"fine_status":  models.FineStatusPaid,
			"payment_date": req.PaymentDate,
		})
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
			"message": "Fine ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Fine paid successfully",
		"fine_status":  models.FineStatusPaid,
		"payment_date": req.PaymentDate,
	})
}
