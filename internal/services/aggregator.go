package services

import (
	"sort"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const uncategorizedName = "Uncategorized"

// AggregatePeriod totals the transactions whose date falls in w. Transfers are
// counted in TransferTotal only.
func AggregatePeriod(transactions []models.Transaction, w models.Window) models.PeriodTotals {
	totals := models.PeriodTotals{
		IncomeTotal:   decimal.Zero,
		ExpenseTotal:  decimal.Zero,
		TransferTotal: decimal.Zero,
	}

	for i := range transactions {
		txn := &transactions[i]
		if !w.Contains(txn.Date) {
			continue
		}

		totals.TransactionCount++
		switch txn.TransactionType {
		case models.TransactionTypeIncome:
			totals.IncomeTotal = totals.IncomeTotal.Add(txn.Amount)
		case models.TransactionTypeExpense:
			totals.ExpenseTotal = totals.ExpenseTotal.Add(txn.Amount)
		case models.TransactionTypeTransfer:
			totals.TransferTotal = totals.TransferTotal.Add(txn.Amount)
		}
	}

	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)
	return totals
}

type categoryKey struct {
	id           uuid.UUID
	categoryType string
}

// AggregateByCategory totals income and expense transactions in w per
// category. Transactions without a known category land in an
// "Uncategorized" bucket of their own type. Rows are ordered expense first,
// then by descending total.
func AggregateByCategory(transactions []models.Transaction, w models.Window, categories []models.Category) []models.CategoryTotal {
	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	buckets := make(map[categoryKey]*models.CategoryTotal)
	for i := range transactions {
		txn := &transactions[i]
		if txn.IsTransfer() || !w.Contains(txn.Date) {
			continue
		}

		key := categoryKey{categoryType: txn.TransactionType}
		var category *models.Category
		if txn.CategoryID != nil {
			if c, ok := byID[*txn.CategoryID]; ok {
				category = c
				key.id = c.ID
			}
		}

		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.CategoryTotal{
				CategoryName: uncategorizedName,
				CategoryType: txn.TransactionType,
				Total:        decimal.Zero,
			}
			if category != nil {
				id := category.ID
				bucket.CategoryID = &id
				bucket.CategoryName = category.Name
				bucket.Color = category.Color
			}
			buckets[key] = bucket
		}

		bucket.Total = bucket.Total.Add(txn.Amount)
		bucket.TransactionCount++
	}

	rows := make([]models.CategoryTotal, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, *bucket)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CategoryType != rows[j].CategoryType {
			return rows[i].CategoryType == models.TransactionTypeExpense
		}
		if cmp := rows[i].Total.Cmp(rows[j].Total); cmp != 0 {
			return cmp > 0
		}
		return rows[i].CategoryName < rows[j].CategoryName
	})

	return rows
}
