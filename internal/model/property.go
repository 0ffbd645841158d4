package model

import "time"

// Property scopes maintenance tasks to a single building or unit.
type Property struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []MaintenanceTask `gorm:"foreignKey:PropertyID"`
}
