package service

import (
	"context"
	"strings"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/shopspring/decimal"
)

const defaultExpenseAuthor = "Admin"

// ExpenseService records temple expenses
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents an expense submission
type CreateExpenseInput struct {
	ExpenseDate string
	Purpose     string
	Amount      string
	AddedBy     string
}

// CreateExpense validates and stores an expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	var fieldErrors []apperror.FieldError

	date, err := ParseInputDate("expense_date", input.ExpenseDate)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "expense_date", Message: "expense date is required"})
	}
	purpose := strings.TrimSpace(input.Purpose)
	if purpose == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "purpose", Message: "purpose is required"})
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(input.Amount))
	if err != nil || !amount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "amount must be a positive number"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	addedBy := strings.TrimSpace(input.AddedBy)
	if addedBy == "" {
		addedBy = defaultExpenseAuthor
	}

	expense := &entity.Expense{
		ExpenseDate: date,
		Purpose:     purpose,
		Amount:      amount.Round(2),
		AddedBy:     addedBy,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns expenses newest first. The range only applies when
// both bounds are given.
func (s *ExpenseService) ListExpenses(ctx context.Context, from, to string) ([]entity.Expense, error) {
	if from != "" && to != "" {
		var err error
		if from, err = ParseInputDate("from", from); err != nil {
			return nil, apperror.NewFieldError("from", "from must be D/M/YYYY or YYYY-MM-DD")
		}
		if to, err = ParseInputDate("to", to); err != nil {
			return nil, apperror.NewFieldError("to", "to must be D/M/YYYY or YYYY-MM-DD")
		}
	} else {
		from, to = "", ""
	}

	expenses, err := s.expenseRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}
	return expenses, nil
}

var expenseColumns = []sheetColumn{
	{"Date", 15},
	{"Purpose", 40},
	{"Amount ₹", 15},
	{"Added By", 20},
}

// ExportExpenses renders the listed expenses as an xlsx workbook
func (s *ExpenseService) ExportExpenses(ctx context.Context, from, to string) (*Export, error) {
	expenses, err := s.ListExpenses(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		date := e.ExpenseDate
		if t, err := parseDate(e.ExpenseDate); err == nil {
			date = t.Format("02/01/2006")
		}
		rows = append(rows, []any{date, e.Purpose, e.Amount.InexactFloat64(), e.AddedBy})
	}

	data, err := buildWorkbook("Temple Expenses", expenseColumns, rows)
	if err != nil {
		return nil, err
	}
	return &Export{FileName: "temple-expenses.xlsx", ContentType: xlsxContentType, Data: data}, nil
}
