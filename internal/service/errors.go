package service

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// ErrValidation marks input rejected before any store call.
var ErrValidation = errors.New("invalid input")

// ErrNotFound marks a missing task, property or worker.
var ErrNotFound = errors.New("not found")

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// mapNotFound converts gorm's record-not-found into ErrNotFound, leaving other
// store failures wrapped as-is.
func mapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// SyncError reports a partially failed reminder reconciliation. The
// synchronizer keeps going past individual schedule/cancel failures and
// collects them here so a later sync can retry just the failed tasks.
type SyncError struct {
	Failed map[uint]error
}

func (e *SyncError) Error() string {
	ids := make([]int, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	return fmt.Sprintf("reminder sync failed for %d task(s) %v", len(ids), ids)
}
