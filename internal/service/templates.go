package service

import (
	"context"
	"time"

	"property-keeper/internal/model"
)

// TaskTemplate is a predefined maintenance task users can add with one tap
// instead of filling in the form.
type TaskTemplate struct {
	ID                 string
	Title              string
	Frequency          model.Frequency
	ReminderDaysBefore int
}

var taskTemplates = []TaskTemplate{
	{ID: "hvac-filter", Title: "Replace HVAC filter", Frequency: model.FrequencyQuarterly, ReminderDaysBefore: 7},
	{ID: "gutter-cleaning", Title: "Clean gutters", Frequency: model.FrequencyBiannual, ReminderDaysBefore: 14},
	{ID: "smoke-detector", Title: "Test smoke detectors", Frequency: model.FrequencyMonthly, ReminderDaysBefore: 3},
	{ID: "water-heater-flush", Title: "Flush water heater", Frequency: model.FrequencyYearly, ReminderDaysBefore: 14},
	{ID: "lawn-care", Title: "Mow lawn and trim hedges", Frequency: model.FrequencyWeekly, ReminderDaysBefore: 1},
	{ID: "pest-inspection", Title: "Pest inspection", Frequency: model.FrequencyQuarterly, ReminderDaysBefore: 7},
	{ID: "roof-inspection", Title: "Inspect roof and flashing", Frequency: model.FrequencyYearly, ReminderDaysBefore: 30},
}

// Templates returns the built-in template catalog.
func Templates() []TaskTemplate {
	out := make([]TaskTemplate, len(taskTemplates))
	copy(out, taskTemplates)
	return out
}

// CreateFromTemplate instantiates a template as a task for the property, first
// due at the given start date.
func (s *TaskService) CreateFromTemplate(ctx context.Context, propertyID uint, templateID string, start time.Time) (*model.MaintenanceTask, error) {
	for _, tmpl := range taskTemplates {
		if tmpl.ID == templateID {
			return s.CreateTask(ctx, TaskInput{
				PropertyID:         propertyID,
				Title:              tmpl.Title,
				Frequency:          tmpl.Frequency,
				NextDueDate:        start,
				ReminderDaysBefore: tmpl.ReminderDaysBefore,
			})
		}
	}
	return nil, validationf("unknown template %q", templateID)
}
