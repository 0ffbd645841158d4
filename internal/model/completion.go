package model

import "time"

// MaintenanceCompletion is one row of the completion ledger. Rows are
// append-only: once written they are never edited, and they are removed only
// when their task is deleted. ClientKey is a caller-generated idempotency key
// so a retried completion cannot be recorded twice.
type MaintenanceCompletion struct {
	ID            uint   `gorm:"primaryKey"`
	TaskID        uint   `gorm:"index"`
	ClientKey     string `gorm:"uniqueIndex"`
	CompletedDate time.Time
	WorkerID      *uint `gorm:"index"`
	Notes         string
	Cost          *float64
	CreatedAt     time.Time
}
