package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/psatpute/HOA-OPs-AI/models"
)

func incomeAt(created time.Time, desc string) models.Income {
	return models.Income{
		ID:          primitive.NewObjectID(),
		Date:        created.Format("2006-01-02"),
		Amount:      100,
		Source:      "Dues",
		Description: desc,
		CreatedAt:   created,
	}
}

func expenseAt(created time.Time, desc string) models.Expense {
	return models.Expense{
		ID:          primitive.NewObjectID(),
		Date:        created.Format("2006-01-02"),
		Amount:      50,
		Category:    "Repairs",
		Vendor:      "Acme",
		Description: desc,
		CreatedAt:   created,
	}
}

func TestMergeRecentTransactionsGlobalOrder(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	income := []models.Income{
		incomeAt(base.Add(5*time.Hour), "inc-newest"),
		incomeAt(base.Add(1*time.Hour), "inc-oldest"),
	}
	expenses := []models.Expense{
		expenseAt(base.Add(4*time.Hour), "exp-mid"),
		expenseAt(base.Add(2*time.Hour), "exp-old"),
	}

	merged := MergeRecentTransactions(income, expenses, 3)

	require.Len(t, merged, 3)
	assert.Equal(t, "inc-newest", merged[0].Description)
	assert.Equal(t, "income", merged[0].Type)
	assert.Equal(t, "exp-mid", merged[1].Description)
	assert.Equal(t, "expense", merged[1].Type)
	assert.Equal(t, "exp-old", merged[2].Description)
}

func TestMergeRecentTransactionsTruncatesGlobally(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Five newer incomes should push every expense out of the top five.
	var income []models.Income
	for i := 0; i < 5; i++ {
		income = append(income, incomeAt(base.Add(time.Duration(10+i)*time.Hour), "inc"))
	}
	expenses := []models.Expense{
		expenseAt(base.Add(1*time.Hour), "exp"),
		expenseAt(base.Add(2*time.Hour), "exp"),
	}

	merged := MergeRecentTransactions(income, expenses, 5)

	require.Len(t, merged, 5)
	for _, tx := range merged {
		assert.Equal(t, "income", tx.Type)
	}
}

func TestMergeRecentTransactionsFieldMapping(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	merged := MergeRecentTransactions(nil, []models.Expense{expenseAt(base, "plumbing")}, 5)

	require.Len(t, merged, 1)
	assert.Equal(t, "Acme", merged[0].Vendor)
	assert.Equal(t, "Repairs", merged[0].Category)
	assert.Empty(t, merged[0].Source)
}

func TestMergeRecentTransactionsEmpty(t *testing.T) {
	merged := MergeRecentTransactions(nil, nil, 5)

	assert.Empty(t, merged)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 350.5, Round2(100.00+250.50))
	assert.Equal(t, 0.1, Round2(0.1+0.2-0.2))
	assert.Equal(t, 1234.57, Round2(1234.5678))
	assert.Equal(t, -2.35, Round2(-2.346))
	assert.Equal(t, 0.0, Round2(0))
}
