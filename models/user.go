package models

import (
	"gorm.io/gorm"
)

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	Role   string `gorm:"type:user_role;not null;default:'manager'" json:"role"` // 'admin' or 'manager'
	UnitID *uint  `gorm:"index" json:"unitId,omitempty"`
}

// Admins see every unit; only managers carry a unit scope.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.Role == RoleAdmin {
		u.UnitID = nil
	}
	return
}
