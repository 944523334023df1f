package models

import (
	"time"
)

type Student struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UnitID uint `gorm:"index;not null" json:"unitId"`

	Name            string `gorm:"not null" json:"name"`
	Phone           string `gorm:"not null" json:"phone"`
	Email           string `gorm:"not null" json:"email"`
	BirthDate       string `gorm:"not null" json:"birthDate"` // YYYY-MM-DD
	ResponsibleName string `json:"responsibleName,omitempty"`
	Course          string `gorm:"not null" json:"course"`
	Status          string `gorm:"type:student_status;not null;default:'Active'" json:"status"` // Active, Inactive

	Timeline []TimelineLog `gorm:"foreignKey:StudentID" json:"timeline"`
}

// TimelineLog is an append-only activity entry owned by one student.
// Entries are immutable once created; display order is insertion order.
type TimelineLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"index;not null" json:"studentId"`
	Date      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"date"`
	Type      string    `gorm:"type:log_type;not null" json:"type"` // Sistema, WhatsApp, Financeiro, Nota
	Message   string    `gorm:"not null" json:"message"`
}
