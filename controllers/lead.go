package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"playjazz-backend/config"
	"playjazz-backend/models"
	"playjazz-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateLeadInput defines the expected JSON structure for creating a lead
type CreateLeadInput struct {
	UnitID     uint   `json:"unitId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email"`
	Instrument string `json:"instrument"`
	Source     string `json:"source" binding:"required,oneof=Instagram Google Indicação"`
	Status     string `json:"status" binding:"omitempty,oneof=NEW CONTACTED TRIAL NEGOTIATION WON LOST"`
}

// UpdateLeadInput defines the expected JSON structure for updating a lead.
// Status accepts any pipeline code: manual reassignment is unrestricted,
// only the automated advance on the client is linear.
type UpdateLeadInput struct {
	UnitID     *uint   `json:"unitId"`
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Instrument *string `json:"instrument"`
	Source     *string `json:"source" binding:"omitempty,oneof=Instagram Google Indicação"`
	Status     *string `json:"status" binding:"omitempty,oneof=NEW CONTACTED TRIAL NEGOTIATION WON LOST"`
}

// GetLeads retrieves leads, optionally scoped to one unit
func GetLeads(c *gin.Context) {
	query := config.DB
	if unitID := c.Query("unitId"); unitID != "" {
		id, err := strconv.Atoi(unitID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid unit ID format")
			return
		}
		query = query.Where("unit_id = ?", id)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}

// CreateLead creates a new lead, entering the pipeline at NEW
func CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	status := input.Status
	if status == "" {
		status = models.LeadStatusNew
	}

	lead := models.Lead{
		UnitID:     input.UnitID,
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Instrument: input.Instrument,
		Source:     input.Source,
		Status:     status,
	}

	if err := config.DB.Create(&lead).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// UpdateLead updates an existing lead
func UpdateLead(c *gin.Context) {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var input UpdateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.UnitID != nil {
		lead.UnitID = *input.UnitID
	}
	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		lead.Phone = *input.Phone
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Instrument != nil {
		lead.Instrument = *input.Instrument
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}

	if err := config.DB.Save(&lead).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead permanently deletes a lead
func DeleteLead(c *gin.Context) {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	result := config.DB.Delete(&models.Lead{}, leadID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete lead")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
