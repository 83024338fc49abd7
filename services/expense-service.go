package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/repositories"
)

type ExpenseService struct {
	Expenses *repositories.Repository[models.Expense]
}

func NewExpenseService(database *mongo.Database) *ExpenseService {
	return &ExpenseService{
		Expenses: repositories.New[models.Expense](database.Collection("expenses"), "date", false),
	}
}

func (s *ExpenseService) Create(ctx context.Context, req models.ExpenseCreate, userID string) (*models.Expense, error) {
	expense := models.Expense{
		Date:        req.Date,
		Amount:      req.Amount,
		Category:    req.Category,
		Vendor:      req.Vendor,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		ReceiptURL:  req.ReceiptURL,
		CreatedBy:   userID,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.Expenses.Insert(ctx, expense)
	if err != nil {
		return nil, err
	}
	expense.ID = id
	return &expense, nil
}

func (s *ExpenseService) List(ctx context.Context, category, vendor, projectID, search string, skip, limit int64) ([]models.Expense, int64, error) {
	filter := repositories.ListFilter{
		Equals:       map[string]string{"category": category, "projectId": projectID},
		Contains:     map[string]string{"vendor": vendor},
		Search:       search,
		SearchFields: []string{"description", "vendor"},
	}
	return s.Expenses.List(ctx, filter, skip, limit)
}

func (s *ExpenseService) Get(ctx context.Context, id string) (*models.Expense, error) {
	return s.Expenses.FindByID(ctx, id)
}
