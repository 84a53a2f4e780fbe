package dto

import (
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"

	"github.com/google/uuid"
)

// DefaultTransactionLimit caps list responses when the client sends no limit
const DefaultTransactionLimit = 100

// TransactionRequest represents the payload for creating or replacing a transaction
type TransactionRequest struct {
	AccountID         string   `json:"account_id" validate:"required,uuid"`
	CategoryID        string   `json:"category_id" validate:"omitempty,uuid"`
	TransferAccountID string   `json:"transfer_account_id" validate:"omitempty,uuid"`
	TransactionType   string   `json:"transaction_type" validate:"required,transaction_type"`
	Amount            string   `json:"amount" validate:"required,amount"`
	Date              string   `json:"date" validate:"required,civil_date"`
	Description       string   `json:"description" validate:"omitempty,max=255"`
	Merchant          string   `json:"merchant" validate:"omitempty,max=255"`
	Location          string   `json:"location" validate:"omitempty,max=255"`
	Notes             string   `json:"notes" validate:"omitempty,max=2000"`
	Tags              []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

// ToModel converts the request into a transaction. The caller sets ID on update.
func (r TransactionRequest) ToModel() (*models.Transaction, error) {
	accountID, err := uuid.Parse(r.AccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid account_id: %w", err)
	}

	amount, err := models.ParseAmount(r.Amount)
	if err != nil {
		return nil, err
	}

	date, err := validation.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		AccountID:       accountID,
		TransactionType: r.TransactionType,
		Amount:          amount,
		Date:            date,
		Description:     r.Description,
		Merchant:        r.Merchant,
		Location:        r.Location,
		Notes:           r.Notes,
		Tags:            models.NewStringSet(r.Tags...),
	}

	if transaction.CategoryID, err = parseOptionalUUID(r.CategoryID); err != nil {
		return nil, fmt.Errorf("invalid category_id: %w", err)
	}
	if transaction.TransferAccountID, err = parseOptionalUUID(r.TransferAccountID); err != nil {
		return nil, fmt.Errorf("invalid transfer_account_id: %w", err)
	}

	return transaction, nil
}

// TransactionQuery contains the list filters accepted on GET /transactions
type TransactionQuery struct {
	AccountID  string `query:"account_id" validate:"omitempty,uuid"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	Type       string `query:"type" validate:"omitempty,transaction_type"`
	StartDate  string `query:"start_date" validate:"omitempty,civil_date"`
	EndDate    string `query:"end_date" validate:"omitempty,civil_date"`
	Search     string `query:"search" validate:"omitempty,max=100"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// ToFilters converts the query into store filters. end_date is inclusive on the
// wire and exclusive in the filters.
func (q TransactionQuery) ToFilters() (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Type:   q.Type,
		Search: q.Search,
		Limit:  q.Limit,
	}
	if filters.Limit == 0 {
		filters.Limit = DefaultTransactionLimit
	}

	var err error
	if filters.AccountID, err = parseOptionalUUID(q.AccountID); err != nil {
		return filters, fmt.Errorf("invalid account_id: %w", err)
	}
	if filters.CategoryID, err = parseOptionalUUID(q.CategoryID); err != nil {
		return filters, fmt.Errorf("invalid category_id: %w", err)
	}
	if filters.StartDate, err = parseOptionalDate(q.StartDate); err != nil {
		return filters, err
	}
	if filters.EndDate, err = parseOptionalDate(q.EndDate); err != nil {
		return filters, err
	}
	if filters.EndDate != nil {
		end := filters.EndDate.AddDate(0, 0, 1)
		filters.EndDate = &end
	}

	return filters, nil
}

func parseOptionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := validation.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
