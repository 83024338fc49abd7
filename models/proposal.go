package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ProposalStatuses = []string{"Pending", "Accepted", "Rejected"}

const DefaultProposalStatus = "Pending"

type Proposal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID    string             `bson:"projectId" json:"projectId"`
	VendorName   string             `bson:"vendorName" json:"vendorName"`
	BidAmount    float64            `bson:"bidAmount" json:"bidAmount"`
	Timeline     string             `bson:"timeline" json:"timeline"`
	Warranty     string             `bson:"warranty" json:"warranty"`
	ScopeSummary string             `bson:"scopeSummary" json:"scopeSummary"`
	FileURL      string             `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
	Status       string             `bson:"status" json:"status"`
	UploadedBy   string             `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
	ArchivedAt   *time.Time         `bson:"archivedAt" json:"archivedAt"`
}

type ProposalCreate struct {
	ProjectID    string  `json:"projectId"`
	VendorName   string  `json:"vendorName"`
	BidAmount    float64 `json:"bidAmount"`
	Timeline     string  `json:"timeline"`
	Warranty     string  `json:"warranty"`
	ScopeSummary string  `json:"scopeSummary"`
	Status       string  `json:"status"`
}

func (r *ProposalCreate) Validate() error {
	if strings.TrimSpace(r.ProjectID) == "" {
		return fmt.Errorf("projectId is required")
	}
	if strings.TrimSpace(r.VendorName) == "" {
		return fmt.Errorf("vendor name is required")
	}
	if r.BidAmount <= 0 {
		return fmt.Errorf("bid amount must be greater than 0")
	}
	if strings.TrimSpace(r.Timeline) == "" {
		return fmt.Errorf("timeline is required")
	}
	if strings.TrimSpace(r.Warranty) == "" {
		return fmt.Errorf("warranty is required")
	}
	if strings.TrimSpace(r.ScopeSummary) == "" {
		return fmt.Errorf("scope summary is required")
	}
	if r.Status == "" {
		r.Status = DefaultProposalStatus
	}
	return validateOneOf("status", r.Status, ProposalStatuses)
}

type ProposalUpdate struct {
	VendorName   *string  `json:"vendorName"`
	BidAmount    *float64 `json:"bidAmount"`
	Timeline     *string  `json:"timeline"`
	Warranty     *string  `json:"warranty"`
	ScopeSummary *string  `json:"scopeSummary"`
	Status       *string  `json:"status"`
}

func (r *ProposalUpdate) Validate() error {
	if r.VendorName != nil && strings.TrimSpace(*r.VendorName) == "" {
		return fmt.Errorf("vendor name cannot be empty")
	}
	if r.BidAmount != nil && *r.BidAmount <= 0 {
		return fmt.Errorf("bid amount must be greater than 0")
	}
	if r.Status != nil {
		return validateOneOf("status", *r.Status, ProposalStatuses)
	}
	return nil
}

func (r *ProposalUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.VendorName != nil {
		set["vendorName"] = *r.VendorName
	}
	if r.BidAmount != nil {
		set["bidAmount"] = *r.BidAmount
	}
	if r.Timeline != nil {
		set["timeline"] = *r.Timeline
	}
	if r.Warranty != nil {
		set["warranty"] = *r.Warranty
	}
	if r.ScopeSummary != nil {
		set["scopeSummary"] = *r.ScopeSummary
	}
	if r.Status != nil {
		set["status"] = *r.Status
	}
	return set
}

type ProposalListResponse struct {
	Proposals []Proposal `json:"proposals"`
	Total     int64      `json:"total"`
}
