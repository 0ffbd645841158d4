package model

import "time"

// Worker is a person tasks can be assigned to. Tasks hold a weak reference:
// deleting a worker clears the assignment but never deletes the task.
type Worker struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
