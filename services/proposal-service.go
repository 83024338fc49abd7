package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/repositories"
)

type ProposalService struct {
	Proposals *repositories.Repository[models.Proposal]
	Projects  *repositories.Repository[models.Project]
}

func NewProposalService(database *mongo.Database) *ProposalService {
	return &ProposalService{
		Proposals: repositories.New[models.Proposal](database.Collection("proposals"), "createdAt", true),
		Projects:  repositories.New[models.Project](database.Collection("projects"), "createdAt", true),
	}
}

// Create verifies the referenced project exists before inserting. The link
// is not re-validated on later reads.
func (s *ProposalService) Create(ctx context.Context, req models.ProposalCreate, userID, fileURL string) (*models.Proposal, error) {
	if _, err := s.Projects.FindByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	proposal := models.Proposal{
		ProjectID:    req.ProjectID,
		VendorName:   req.VendorName,
		BidAmount:    req.BidAmount,
		Timeline:     req.Timeline,
		Warranty:     req.Warranty,
		ScopeSummary: req.ScopeSummary,
		FileURL:      fileURL,
		Status:       req.Status,
		UploadedBy:   userID,
		CreatedAt:    now,
		UpdatedAt:    now,
		ArchivedAt:   nil,
	}

	id, err := s.Proposals.Insert(ctx, proposal)
	if err != nil {
		return nil, err
	}
	proposal.ID = id
	return &proposal, nil
}

func (s *ProposalService) List(ctx context.Context, projectID, vendorName string, archived bool, skip, limit int64) ([]models.Proposal, int64, error) {
	filter := repositories.ListFilter{
		Equals:          map[string]string{"projectId": projectID},
		Contains:        map[string]string{"vendorName": vendorName},
		IncludeArchived: archived,
	}
	return s.Proposals.List(ctx, filter, skip, limit)
}

func (s *ProposalService) Get(ctx context.Context, id string) (*models.Proposal, error) {
	return s.Proposals.FindByID(ctx, id)
}

func (s *ProposalService) Update(ctx context.Context, id string, req models.ProposalUpdate) (*models.Proposal, error) {
	set := req.SetFields()
	set["updatedAt"] = time.Now().UTC()
	return s.Proposals.UpdateByID(ctx, id, set)
}

func (s *ProposalService) Archive(ctx context.Context, id string) (bool, error) {
	return s.Proposals.Archive(ctx, id, time.Now().UTC())
}
