package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ExpenseCategories = []string{
	"Maintenance", "Utilities", "Insurance", "Landscaping",
	"Repairs", "Administrative", "Other",
}

// Expense records are immutable once created; there is no update or archive.
type Expense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        string             `bson:"date" json:"date"`
	Amount      float64            `bson:"amount" json:"amount"`
	Category    string             `bson:"category" json:"category"`
	Vendor      string             `bson:"vendor" json:"vendor"`
	Description string             `bson:"description" json:"description"`
	ProjectID   string             `bson:"projectId,omitempty" json:"projectId,omitempty"`
	ReceiptURL  string             `bson:"receiptUrl,omitempty" json:"receiptUrl,omitempty"`
	CreatedBy   string             `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type ExpenseCreate struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Vendor      string  `json:"vendor"`
	Description string  `json:"description"`
	ProjectID   string  `json:"projectId"`
	ReceiptURL  string  `json:"receiptUrl"`
}

func (r *ExpenseCreate) Validate() error {
	if err := validatePastOrPresentDate(r.Date); err != nil {
		return err
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	if err := validateOneOf("category", r.Category, ExpenseCategories); err != nil {
		return err
	}
	if strings.TrimSpace(r.Vendor) == "" {
		return fmt.Errorf("vendor is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

type ExpenseListResponse struct {
	Expenses []Expense `json:"expenses"`
	Total    int64     `json:"total"`
}
