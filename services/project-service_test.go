package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psatpute/HOA-OPs-AI/models"
)

func TestSumExpenseAmounts(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100.00},
		{Amount: 250.50},
	}

	assert.Equal(t, 350.5, SumExpenseAmounts(expenses))
}

func TestSumExpenseAmountsEmpty(t *testing.T) {
	assert.Equal(t, 0.0, SumExpenseAmounts(nil))
}

func TestSortProposalsByBid(t *testing.T) {
	proposals := []models.Proposal{
		{VendorName: "Charlie", BidAmount: 9000},
		{VendorName: "Alpha", BidAmount: 4500},
		{VendorName: "Bravo", BidAmount: 7200},
	}

	SortProposalsByBid(proposals)

	require.Len(t, proposals, 3)
	assert.Equal(t, "Alpha", proposals[0].VendorName)
	assert.Equal(t, "Bravo", proposals[1].VendorName)
	assert.Equal(t, "Charlie", proposals[2].VendorName)
}

func TestSortProposalsByBidStable(t *testing.T) {
	proposals := []models.Proposal{
		{VendorName: "First", BidAmount: 5000},
		{VendorName: "Second", BidAmount: 5000},
	}

	SortProposalsByBid(proposals)

	assert.Equal(t, "First", proposals[0].VendorName)
	assert.Equal(t, "Second", proposals[1].VendorName)
}
