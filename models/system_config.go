package models

// SystemConfig is a singleton row: created on first save, updated
// thereafter.
type SystemConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WhatsappProvider      string `gorm:"default:'gateway'" json:"whatsappProvider"` // 'cloud_api' or 'gateway'
	WhatsappBaseURL       string `json:"whatsappBaseUrl"`
	WhatsappAPIKey        string `json:"whatsappApiKey"`
	WhatsappPhoneNumberID string `json:"whatsappPhoneNumberId"`

	GeminiAPIKey      string `json:"geminiApiKey"`
	NotificationEmail string `json:"notificationEmail"`
}
