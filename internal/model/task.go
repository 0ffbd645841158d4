package model

import (
	"fmt"
	"time"
)

// Frequency is how often a maintenance task repeats.
type Frequency string

const (
	FrequencyOnce      Frequency = "once"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyBiannual  Frequency = "biannual"
	FrequencyYearly    Frequency = "yearly"
)

// Validate reports whether f is one of the known frequencies.
func (f Frequency) Validate() error {
	switch f {
	case FrequencyOnce, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyBiannual, FrequencyYearly:
		return nil
	}
	return fmt.Errorf("unknown frequency %q", string(f))
}

// UrgencyState classifies how close a task is to its due date. Derived, never stored.
type UrgencyState string

const (
	UrgencyOverdue   UrgencyState = "overdue"
	UrgencyDueSoon   UrgencyState = "due_soon"
	UrgencyUpcoming  UrgencyState = "upcoming"
	UrgencyCompleted UrgencyState = "completed"
)

// MaintenanceTask is a recurring or one-off upkeep item for a property.
// IsCompleted becomes true only when a once task finishes its single
// occurrence; recurring tasks stay open and roll NextDueDate forward instead.
type MaintenanceTask struct {
	ID                 uint `gorm:"primaryKey"`
	PropertyID         uint `gorm:"index"`
	Title              string
	Frequency          Frequency `gorm:"type:text"`
	NextDueDate        time.Time
	ReminderDaysBefore int
	AssignedWorkerID   *uint `gorm:"index"`
	IsCompleted        bool  `gorm:"default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
