package controllers

import (
	"net/http"
	"strconv"

	"playjazz-backend/config"
	"playjazz-backend/models"
	"playjazz-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetPayments retrieves payments, optionally scoped to one unit.
// Status is an externally-set classification: nothing here moves
// PENDING to OVERDUE when a due date passes.
func GetPayments(c *gin.Context) {
	query := config.DB
	if unitID := c.Query("unitId"); unitID != "" {
		id, err := strconv.Atoi(unitID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid unit ID format")
			return
		}
		query = query.Where("unit_id = ?", id)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}
