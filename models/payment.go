package models

import (
	"github.com/shopspring/decimal"
)

// Payment duplicates the owning UnitID so tenant filtering never needs
// a join through students.
type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StudentID uint `gorm:"index;not null" json:"studentId"`
	UnitID    uint `gorm:"index;not null" json:"unitId"`

	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	DueDate     string          `gorm:"not null" json:"dueDate"` // YYYY-MM-DD
	Status      string          `gorm:"type:payment_status;not null;default:'PENDING'" json:"status"`
	Description string          `gorm:"not null" json:"description"`
}
