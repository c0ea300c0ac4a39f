package core

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Labels used by the per-category ledger views. The category field itself is
// an open label; these are the two the list screens group by.
const (
	Personal Category = "Personal"
	Business Category = "Business"
)

type (
	Category string

	// ExpenseRecord is one ledger entry. Records are immutable once created.
	ExpenseRecord struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Category Category        `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
	}

	Activity struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
)

var (
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyTitle    = errors.New("empty title")
)

// NewExpenseRecord creates a record with a fresh identifier.
func NewExpenseRecord(name string, category Category, amount decimal.Decimal) ExpenseRecord {
	return ExpenseRecord{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Amount:   amount,
	}
}

// NewActivity creates an activity with a fresh identifier.
func NewActivity(title, description string) Activity {
	return Activity{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}
}

func (c Category) String() string {
	return string(c)
}

// Validate checks the record for obviously bad input. The ledger itself
// stores whatever it is given; callers that accept user input run this first.
func (e ExpenseRecord) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if len(e.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if strings.TrimSpace(string(e.Category)) == "" {
		return ErrEmptyCategory
	}
	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// Equal reports whether two records carry the same identity and values.
// Amounts compare numerically, so 999 and 999.00 are equal.
func (e ExpenseRecord) Equal(o ExpenseRecord) bool {
	return e.ID == o.ID &&
		e.Name == o.Name &&
		e.Category == o.Category &&
		e.Amount.Equal(o.Amount)
}

func (a Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
