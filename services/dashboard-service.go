package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/psatpute/HOA-OPs-AI/models"
)

// recentTransactionCount is the size of the dashboard's recent list. Up to
// this many newest records are pulled from each collection, then the merged
// pool is cut back down to this many overall.
const recentTransactionCount = 5

// DashboardService computes the financial overview across the entire income
// and expense collections; there is no per-user or date-range scoping.
type DashboardService struct {
	IncomeCollection   *mongo.Collection
	ExpensesCollection *mongo.Collection
}

func NewDashboardService(database *mongo.Database) *DashboardService {
	return &DashboardService{
		IncomeCollection:   database.Collection("income"),
		ExpensesCollection: database.Collection("expenses"),
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	totalIncome, err := s.sumAmounts(ctx, s.IncomeCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to total income: %w", err)
	}

	totalExpenses, err := s.sumAmounts(ctx, s.ExpensesCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}

	byCategory, err := s.expensesByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses: %w", err)
	}

	recentIncome, err := s.recentIncome(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent income: %w", err)
	}
	recentExpenses, err := s.recentExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent expenses: %w", err)
	}

	return &models.DashboardSummary{
		// Totals keep full precision internally; rounding happens only here.
		TotalBalance:       Round2(totalIncome - totalExpenses),
		TotalIncome:        Round2(totalIncome),
		TotalExpenses:      Round2(totalExpenses),
		ExpensesByCategory: byCategory,
		RecentTransactions: MergeRecentTransactions(recentIncome, recentExpenses, recentTransactionCount),
	}, nil
}

func (s *DashboardService) sumAmounts(ctx context.Context, collection *mongo.Collection) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (s *DashboardService) expensesByCategory(ctx context.Context) ([]models.CategoryBreakdown, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$category",
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"total": -1}},
	}

	cursor, err := s.ExpensesCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category string  `bson:"_id"`
		Total    float64 `bson:"total"`
		Count    int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(rows))
	for _, row := range rows {
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category: row.Category,
			Total:    Round2(row.Total),
			Count:    row.Count,
		})
	}
	return breakdown, nil
}

func (s *DashboardService) recentIncome(ctx context.Context) ([]models.Income, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(recentTransactionCount)
	cursor, err := s.IncomeCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.Income{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *DashboardService) recentExpenses(ctx context.Context) ([]models.Expense, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(recentTransactionCount)
	cursor, err := s.ExpensesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.Expense{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MergeRecentTransactions folds the newest records from both collections
// into one list ordered by creation time descending and truncated to n
// overall, not n from each side.
func MergeRecentTransactions(income []models.Income, expenses []models.Expense, n int) []models.Transaction {
	merged := make([]models.Transaction, 0, len(income)+len(expenses))

	for _, inc := range income {
		merged = append(merged, models.Transaction{
			ID:          inc.ID.Hex(),
			Type:        "income",
			Date:        inc.Date,
			Amount:      inc.Amount,
			Description: inc.Description,
			Source:      inc.Source,
			CreatedAt:   inc.CreatedAt,
		})
	}
	for _, exp := range expenses {
		merged = append(merged, models.Transaction{
			ID:          exp.ID.Hex(),
			Type:        "expense",
			Date:        exp.Date,
			Amount:      exp.Amount,
			Description: exp.Description,
			Vendor:      exp.Vendor,
			Category:    exp.Category,
			CreatedAt:   exp.CreatedAt,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	if len(merged) > n {
		merged = merged[:n]
	}
	return merged
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
