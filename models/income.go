package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var IncomeSources = []string{"Dues", "Assessment", "Fine", "Interest", "Other"}

// Income records are immutable once created; there is no update or archive.
type Income struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        string             `bson:"date" json:"date"`
	Amount      float64            `bson:"amount" json:"amount"`
	Source      string             `bson:"source" json:"source"`
	Description string             `bson:"description" json:"description"`
	CreatedBy   string             `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type IncomeCreate struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Description string  `json:"description"`
}

func (r *IncomeCreate) Validate() error {
	if err := validatePastOrPresentDate(r.Date); err != nil {
		return err
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	if err := validateOneOf("source", r.Source, IncomeSources); err != nil {
		return err
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

type IncomeListResponse struct {
	Income []Income `json:"income"`
	Total  int64    `json:"total"`
}

// RowError reports a single failed row from a bulk import. Row 0 marks a
// file-level failure that aborted row processing.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}
