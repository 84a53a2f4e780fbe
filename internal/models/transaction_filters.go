package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries.
// StartDate is inclusive and EndDate exclusive.
type TransactionFilters struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	Limit      int
}

// Matches applies the filters to an already loaded transaction. It mirrors the
// SQL built by the persisted store so in-memory sources answer identically.
// accountName is the name of t's account, which Search also matches.
func (f TransactionFilters) Matches(t *Transaction, accountName string) bool {
	if f.AccountID != nil && !t.Touches(*f.AccountID) {
		return false
	}
	if f.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *f.CategoryID) {
		return false
	}
	if f.Type != "" && t.TransactionType != f.Type {
		return false
	}
	if f.StartDate != nil && t.Date.Before(CivilDate(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && !t.Date.Before(CivilDate(*f.EndDate)) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.Merchant), needle) &&
			!strings.Contains(strings.ToLower(t.Location), needle) &&
			!strings.Contains(strings.ToLower(accountName), needle) {
			return false
		}
	}
	return true
}
