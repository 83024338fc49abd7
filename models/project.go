package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ProjectStatuses = []string{"Planned", "In Progress", "Completed"}

type Project struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description" json:"description"`
	Status           string             `bson:"status" json:"status"`
	Budget           float64            `bson:"budget" json:"budget"`
	StartDate        string             `bson:"startDate" json:"startDate"`
	EndDate          string             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	AssignedVendorID string             `bson:"assignedVendorId,omitempty" json:"assignedVendorId,omitempty"`
	CreatedBy        string             `bson:"createdBy" json:"createdBy"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
	ArchivedAt       *time.Time         `bson:"archivedAt" json:"archivedAt"`
}

type ProjectCreate struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Status           string  `json:"status"`
	Budget           float64 `json:"budget"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	AssignedVendorID string  `json:"assignedVendorId"`
}

func (r *ProjectCreate) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("project description is required")
	}
	if err := validateOneOf("status", r.Status, ProjectStatuses); err != nil {
		return err
	}
	if r.Budget <= 0 {
		return fmt.Errorf("budget must be greater than 0")
	}
	if err := validateDate(r.StartDate); err != nil {
		return err
	}
	if r.EndDate != "" {
		if err := validateDate(r.EndDate); err != nil {
			return err
		}
	}
	return nil
}

// ProjectUpdate carries a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Status           *string  `json:"status"`
	Budget           *float64 `json:"budget"`
	StartDate        *string  `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	AssignedVendorID *string  `json:"assignedVendorId"`
}

func (r *ProjectUpdate) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		return fmt.Errorf("project description cannot be empty")
	}
	if r.Status != nil {
		if err := validateOneOf("status", *r.Status, ProjectStatuses); err != nil {
			return err
		}
	}
	if r.Budget != nil && *r.Budget <= 0 {
		return fmt.Errorf("budget must be greater than 0")
	}
	if r.StartDate != nil {
		if err := validateDate(*r.StartDate); err != nil {
			return err
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if err := validateDate(*r.EndDate); err != nil {
			return err
		}
	}
	return nil
}

// SetFields returns the $set document for the present fields only.
func (r *ProjectUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Status != nil {
		set["status"] = *r.Status
	}
	if r.Budget != nil {
		set["budget"] = *r.Budget
	}
	if r.StartDate != nil {
		set["startDate"] = *r.StartDate
	}
	if r.EndDate != nil {
		set["endDate"] = *r.EndDate
	}
	if r.AssignedVendorID != nil {
		set["assignedVendorId"] = *r.AssignedVendorID
	}
	return set
}

// ProjectDetail is the aggregation view for a single project: its
// non-archived proposals, all linked expenses and the derived actualSpent.
type ProjectDetail struct {
	Project
	Proposals   []Proposal `json:"proposals"`
	Expenses    []Expense  `json:"expenses"`
	ActualSpent float64    `json:"actualSpent"`
}

// ProjectComparison lists a project's proposals cheapest bid first.
type ProjectComparison struct {
	Project   Project    `json:"project"`
	Proposals []Proposal `json:"proposals"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
	Total    int64     `json:"total"`
}
