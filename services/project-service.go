package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/repositories"
)

// comparisonProposalLimit caps how many proposals the comparison view pulls.
const comparisonProposalLimit = 100

type ProjectService struct {
	Projects  *repositories.Repository[models.Project]
	Proposals *repositories.Repository[models.Proposal]
	Expenses  *repositories.Repository[models.Expense]
}

func NewProjectService(database *mongo.Database) *ProjectService {
	return &ProjectService{
		Projects:  repositories.New[models.Project](database.Collection("projects"), "createdAt", true),
		Proposals: repositories.New[models.Proposal](database.Collection("proposals"), "createdAt", true),
		Expenses:  repositories.New[models.Expense](database.Collection("expenses"), "date", false),
	}
}

func (s *ProjectService) Create(ctx context.Context, req models.ProjectCreate, userID string) (*models.Project, error) {
	now := time.Now().UTC()
	project := models.Project{
		Name:             req.Name,
		Description:      req.Description,
		Status:           req.Status,
		Budget:           req.Budget,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		AssignedVendorID: req.AssignedVendorID,
		CreatedBy:        userID,
		CreatedAt:        now,
		UpdatedAt:        now,
		ArchivedAt:       nil,
	}

	id, err := s.Projects.Insert(ctx, project)
	if err != nil {
		return nil, err
	}
	project.ID = id
	return &project, nil
}

func (s *ProjectService) List(ctx context.Context, status, search string, archived bool, skip, limit int64) ([]models.Project, int64, error) {
	filter := repositories.ListFilter{
		Equals:          map[string]string{"status": status},
		Search:          search,
		SearchFields:    []string{"name", "description"},
		IncludeArchived: archived,
	}
	return s.Projects.List(ctx, filter, skip, limit)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.Projects.FindByID(ctx, id)
}

// GetDetail returns the project with its non-archived proposals, all linked
// expenses and actualSpent. A project with no linked records still succeeds
// with empty lists and 0.0.
func (s *ProjectService) GetDetail(ctx context.Context, id string) (*models.ProjectDetail, error) {
	project, err := s.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	proposals, err := s.Proposals.FindAll(ctx, bson.M{"projectId": id, "archivedAt": nil}, 0)
	if err != nil {
		return nil, err
	}

	expenses, err := s.Expenses.FindAll(ctx, bson.M{"projectId": id}, 0)
	if err != nil {
		return nil, err
	}

	return &models.ProjectDetail{
		Project:     *project,
		Proposals:   proposals,
		Expenses:    expenses,
		ActualSpent: SumExpenseAmounts(expenses),
	}, nil
}

// GetComparison returns the project's proposals ordered cheapest bid first.
// The ordering is an in-memory re-sort, distinct from the list sort.
func (s *ProjectService) GetComparison(ctx context.Context, id string) (*models.ProjectComparison, error) {
	project, err := s.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	proposals, err := s.Proposals.FindAll(ctx, bson.M{"projectId": id, "archivedAt": nil}, comparisonProposalLimit)
	if err != nil {
		return nil, err
	}

	SortProposalsByBid(proposals)

	return &models.ProjectComparison{
		Project:   *project,
		Proposals: proposals,
	}, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, req models.ProjectUpdate) (*models.Project, error) {
	set := req.SetFields()
	// updatedAt advances even when the partial payload carries no fields.
	set["updatedAt"] = time.Now().UTC()
	return s.Projects.UpdateByID(ctx, id, set)
}

func (s *ProjectService) Archive(ctx context.Context, id string) (bool, error) {
	return s.Projects.Archive(ctx, id, time.Now().UTC())
}

func SumExpenseAmounts(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func SortProposalsByBid(proposals []models.Proposal) {
	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].BidAmount < proposals[j].BidAmount
	})
}
