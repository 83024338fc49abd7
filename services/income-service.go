package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/psatpute/HOA-OPs-AI/importer"
	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/repositories"
)

type IncomeService struct {
	Income *repositories.Repository[models.Income]
}

func NewIncomeService(database *mongo.Database) *IncomeService {
	return &IncomeService{
		Income: repositories.New[models.Income](database.Collection("income"), "date", false),
	}
}

func (s *IncomeService) Create(ctx context.Context, req models.IncomeCreate, userID string) (*models.Income, error) {
	income := models.Income{
		Date:        req.Date,
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
		CreatedBy:   userID,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.Income.Insert(ctx, income)
	if err != nil {
		return nil, err
	}
	income.ID = id
	return &income, nil
}

func (s *IncomeService) List(ctx context.Context, source, search string, skip, limit int64) ([]models.Income, int64, error) {
	filter := repositories.ListFilter{
		Equals:   map[string]string{"source": source},
		Contains: map[string]string{"description": search},
	}
	return s.Income.List(ctx, filter, skip, limit)
}

// BulkCreate persists import records in one round trip with a shared
// createdAt and owner. The returned count is what the store accepted; with
// an unordered insert a bad document drops only itself.
func (s *IncomeService) BulkCreate(ctx context.Context, records []models.IncomeCreate, userID string) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(records))
	for _, r := range records {
		docs = append(docs, models.Income{
			Date:        r.Date,
			Amount:      r.Amount,
			Source:      r.Source,
			Description: r.Description,
			CreatedBy:   userID,
			CreatedAt:   now,
		})
	}

	return s.Income.InsertMany(ctx, docs)
}

// Import parses an uploaded file and persists the valid rows. Row errors are
// returned alongside the imported count, never as a failure.
func (s *IncomeService) Import(ctx context.Context, content []byte, filename, userID string) (*models.ImportResult, error) {
	records, rowErrors := importer.Parse(content, filename)

	imported := 0
	if len(records) > 0 {
		count, err := s.BulkCreate(ctx, records, userID)
		imported = count
		if err != nil {
			logging.Logger.Errorf("Bulk income insert failed after importing %d of %d records: %v", count, len(records), err)
			rowErrors = append(rowErrors, models.RowError{
				Row:   0,
				Error: "Failed to import records: " + err.Error(),
			})
		}
	}

	if rowErrors == nil {
		rowErrors = []models.RowError{}
	}
	return &models.ImportResult{Imported: imported, Errors: rowErrors}, nil
}
