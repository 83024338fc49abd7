package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/repositories"
)

type DocumentService struct {
	Documents *repositories.Repository[models.Document]
}

func NewDocumentService(database *mongo.Database) *DocumentService {
	return &DocumentService{
		Documents: repositories.New[models.Document](database.Collection("documents"), "createdAt", true),
	}
}

func (s *DocumentService) Create(ctx context.Context, req models.DocumentCreate, userID, fileURL, fileType, fileSize string) (*models.Document, error) {
	now := time.Now().UTC()
	document := models.Document{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		FileURL:     fileURL,
		FileType:    fileType,
		FileSize:    fileSize,
		UploadedBy:  userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		ArchivedAt:  nil,
	}

	id, err := s.Documents.Insert(ctx, document)
	if err != nil {
		return nil, err
	}
	document.ID = id
	return &document, nil
}

func (s *DocumentService) List(ctx context.Context, category, search string, archived bool, skip, limit int64) ([]models.Document, int64, error) {
	filter := repositories.ListFilter{
		Equals:          map[string]string{"category": category},
		Search:          search,
		SearchFields:    []string{"title", "description"},
		IncludeArchived: archived,
	}
	return s.Documents.List(ctx, filter, skip, limit)
}

func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	return s.Documents.FindByID(ctx, id)
}

func (s *DocumentService) Update(ctx context.Context, id string, req models.DocumentUpdate) (*models.Document, error) {
	set := req.SetFields()
	set["updatedAt"] = time.Now().UTC()
	return s.Documents.UpdateByID(ctx, id, set)
}

func (s *DocumentService) Archive(ctx context.Context, id string) (bool, error) {
	return s.Documents.Archive(ctx, id, time.Now().UTC())
}
