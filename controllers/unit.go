package controllers

import (
	"net/http"

	"playjazz-backend/config"
	"playjazz-backend/models"
	"playjazz-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetUnits retrieves the static unit reference list
func GetUnits(c *gin.Context) {
	var units []models.Unit
	if err := config.DB.Find(&units).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch units")
		return
	}

	c.JSON(http.StatusOK, units)
}
