package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var DocumentCategories = []string{"Contract", "Meeting Minutes", "Financial Report", "Other"}

type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	FileURL     string             `bson:"fileUrl" json:"fileUrl"`
	FileType    string             `bson:"fileType" json:"fileType"`
	FileSize    string             `bson:"fileSize" json:"fileSize"`
	UploadedBy  string             `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	ArchivedAt  *time.Time         `bson:"archivedAt" json:"archivedAt"`
}

type DocumentCreate struct {
	Title       string
	Category    string
	Description string
}

func (r *DocumentCreate) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return validateOneOf("category", r.Category, DocumentCategories)
}

type DocumentUpdate struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

func (r *DocumentUpdate) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if r.Category != nil {
		return validateOneOf("category", *r.Category, DocumentCategories)
	}
	return nil
}

func (r *DocumentUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	return set
}

type DocumentListResponse struct {
	Documents []Document `json:"documents"`
	Total     int64      `json:"total"`
}
