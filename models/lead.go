package models

import (
	"time"
)

type Lead struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UnitID uint `gorm:"index;not null" json:"unitId"`

	Name       string `gorm:"not null" json:"name"`
	Phone      string `gorm:"not null" json:"phone"`
	Email      string `gorm:"not null" json:"email"`
	Instrument string `gorm:"not null" json:"instrument"`

	Source    string    `gorm:"type:lead_source;not null" json:"source"` // Instagram, Google, Indicação
	Status    string    `gorm:"type:lead_status;not null;default:'NEW'" json:"status"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
}
