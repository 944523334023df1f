package controllers

import (
	"net/http"

	"playjazz-backend/config"
	"playjazz-backend/models"
	"playjazz-backend/utils"

	"github.com/gin-gonic/gin"
)

// WhatsappSettings is the nested wire shape for the WhatsApp section
type WhatsappSettings struct {
	Provider      string `json:"provider" binding:"omitempty,oneof=cloud_api gateway"`
	BaseURL       string `json:"baseUrl"`
	APIKey        string `json:"apiKey"`
	PhoneNumberID string `json:"phoneNumberId"`
}

// GeminiSettings is the nested wire shape for the Gemini section
type GeminiSettings struct {
	APIKey string `json:"apiKey"`
}

// ConfigDocument is the nested document exchanged over the wire; the
// store keeps a single flattened row.
type ConfigDocument struct {
	Whatsapp          WhatsappSettings `json:"whatsapp"`
	Gemini            GeminiSettings   `json:"gemini"`
	NotificationEmail string           `json:"notificationEmail"`
}

func toConfigDocument(row models.SystemConfig) ConfigDocument {
	return ConfigDocument{
		Whatsapp: WhatsappSettings{
			Provider:      row.WhatsappProvider,
			BaseURL:       row.WhatsappBaseURL,
			APIKey:        row.WhatsappAPIKey,
			PhoneNumberID: row.WhatsappPhoneNumberID,
		},
		Gemini:            GeminiSettings{APIKey: row.GeminiAPIKey},
		NotificationEmail: row.NotificationEmail,
	}
}

// DefaultConfigDocument is what GET /api/config returns before any save.
func DefaultConfigDocument() ConfigDocument {
	return ConfigDocument{
		Whatsapp: WhatsappSettings{Provider: "gateway"},
		Gemini:   GeminiSettings{},
	}
}

// GetConfig retrieves the singleton system configuration, defaulted
// when none has been persisted yet
func GetConfig(c *gin.Context) {
	var rows []models.SystemConfig
	if err := config.DB.Limit(1).Find(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch config")
		return
	}

	if len(rows) == 0 {
		c.JSON(http.StatusOK, DefaultConfigDocument())
		return
	}

	c.JSON(http.StatusOK, toConfigDocument(rows[0]))
}

// SaveConfig upserts the singleton system configuration: the row is
// created on first save and updated on every save after that
func SaveConfig(c *gin.Context) {
	var input ConfigDocument
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	row := models.SystemConfig{
		WhatsappProvider:      input.Whatsapp.Provider,
		WhatsappBaseURL:       input.Whatsapp.BaseURL,
		WhatsappAPIKey:        input.Whatsapp.APIKey,
		WhatsappPhoneNumberID: input.Whatsapp.PhoneNumberID,
		GeminiAPIKey:          input.Gemini.APIKey,
		NotificationEmail:     input.NotificationEmail,
	}

	var existing []models.SystemConfig
	if err := config.DB.Limit(1).Find(&existing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if len(existing) > 0 {
		row.ID = existing[0].ID
		if err := config.DB.Model(&existing[0]).Updates(map[string]interface{}{
			"whatsapp_provider":        row.WhatsappProvider,
			"whatsapp_base_url":        row.WhatsappBaseURL,
			"whatsapp_api_key":         row.WhatsappAPIKey,
			"whatsapp_phone_number_id": row.WhatsappPhoneNumberID,
			"gemini_api_key":           row.GeminiAPIKey,
			"notification_email":       row.NotificationEmail,
		}).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save config")
			return
		}
	} else {
		if err := config.DB.Create(&row).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save config")
			return
		}
	}

	c.JSON(http.StatusOK, toConfigDocument(row))
}
