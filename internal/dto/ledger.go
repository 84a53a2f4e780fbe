package dto

import (
	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"
)

// SwitchModeRequest represents the request payload for changing the data mode
type SwitchModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=persisted demonstration"`
}

// ModeResponse reports the session's mode after a read or transition
type ModeResponse struct {
	Mode    string `json:"mode"`
	Changed bool   `json:"changed"`
}

// CategoryBreakdownQuery contains the date range of a category breakdown.
// Both ends are inclusive calendar days.
type CategoryBreakdownQuery struct {
	StartDate string `query:"start_date" validate:"required,civil_date"`
	EndDate   string `query:"end_date" validate:"required,civil_date"`
}

// ToWindow converts the inclusive date range into a half-open window
func (q CategoryBreakdownQuery) ToWindow() (models.Window, error) {
	start, err := validation.ParseDate(q.StartDate)
	if err != nil {
		return models.Window{}, err
	}
	end, err := validation.ParseDate(q.EndDate)
	if err != nil {
		return models.Window{}, err
	}
	return models.NewWindow(start, end.AddDate(0, 0, 1))
}

// ListMeta carries the size of a list response
type ListMeta struct {
	Count int `json:"count"`
}
