package models

// Unit is a branch of the school and the partition key for all
// business data. The list is seeded once and immutable at runtime.
type Unit struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}
