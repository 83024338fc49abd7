package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		Email:     "board@example.com",
		Password:  "supersecret",
		FirstName: "Jordan",
		LastName:  "Reyes",
	}

	req := valid
	require.NoError(t, req.Validate())
	assert.Equal(t, DefaultUserRole, req.Role, "missing role falls back to the default")

	req = valid
	req.Role = "Treasurer"
	require.NoError(t, req.Validate())
	assert.Equal(t, "Treasurer", req.Role)

	req = valid
	req.Email = "not-an-email"
	assert.Error(t, req.Validate())

	req = valid
	req.Password = "short"
	assert.Error(t, req.Validate())

	req = valid
	req.FirstName = "  "
	assert.Error(t, req.Validate())
}

func TestProjectCreateValidate(t *testing.T) {
	valid := ProjectCreate{
		Name:        "Roof Replacement",
		Description: "Replace the clubhouse roof",
		Status:      "Planned",
		Budget:      25000,
		StartDate:   "2024-06-01",
	}

	req := valid
	assert.NoError(t, req.Validate())

	req = valid
	req.EndDate = "2024-09-30"
	assert.NoError(t, req.Validate())

	req = valid
	req.Status = "Cancelled"
	assert.Error(t, req.Validate())

	req = valid
	req.Budget = 0
	assert.Error(t, req.Validate())

	req = valid
	req.StartDate = "06/01/2024"
	assert.Error(t, req.Validate())

	req = valid
	req.Name = ""
	assert.Error(t, req.Validate())
}

func TestProjectUpdateValidateAndSetFields(t *testing.T) {
	name := "New name"
	budget := 1200.0
	upd := ProjectUpdate{Name: &name, Budget: &budget}

	require.NoError(t, upd.Validate())
	set := upd.SetFields()
	assert.Equal(t, "New name", set["name"])
	assert.Equal(t, 1200.0, set["budget"])
	assert.NotContains(t, set, "status")

	empty := ""
	upd = ProjectUpdate{Name: &empty}
	assert.Error(t, upd.Validate())

	zero := 0.0
	upd = ProjectUpdate{Budget: &zero}
	assert.Error(t, upd.Validate())

	assert.Empty(t, (&ProjectUpdate{}).SetFields())
}

func TestProposalCreateValidate(t *testing.T) {
	valid := ProposalCreate{
		ProjectID:    "6650f0a1b2c3d4e5f6a7b8c9",
		VendorName:   "Acme Roofing",
		BidAmount:    18000,
		Timeline:     "8 weeks",
		Warranty:     "10 years",
		ScopeSummary: "Tear-off and re-shingle",
	}

	req := valid
	require.NoError(t, req.Validate())
	assert.Equal(t, DefaultProposalStatus, req.Status)

	req = valid
	req.Status = "Accepted"
	assert.NoError(t, req.Validate())

	req = valid
	req.Status = "Withdrawn"
	assert.Error(t, req.Validate())

	req = valid
	req.BidAmount = -1
	assert.Error(t, req.Validate())

	req = valid
	req.ProjectID = ""
	assert.Error(t, req.Validate())
}

func TestExpenseCreateValidate(t *testing.T) {
	valid := ExpenseCreate{
		Date:        "2024-01-15",
		Amount:      340.25,
		Category:    "Repairs",
		Vendor:      "Acme Plumbing",
		Description: "Pool pump repair",
	}

	req := valid
	assert.NoError(t, req.Validate())

	req = valid
	req.Date = time.Now().AddDate(0, 0, 2).Format(DateLayout)
	assert.Error(t, req.Validate(), "future dates are rejected")

	req = valid
	req.Amount = 0
	assert.Error(t, req.Validate())

	req = valid
	req.Category = "Groceries"
	assert.Error(t, req.Validate())

	req = valid
	req.Vendor = " "
	assert.Error(t, req.Validate())
}

func TestIncomeCreateValidate(t *testing.T) {
	valid := IncomeCreate{
		Date:        "2024-01-15",
		Amount:      350,
		Source:      "Dues",
		Description: "January dues",
	}

	req := valid
	assert.NoError(t, req.Validate())

	req = valid
	req.Source = "Donation"
	assert.Error(t, req.Validate())

	req = valid
	req.Description = ""
	assert.Error(t, req.Validate())

	req = valid
	req.Date = "yesterday"
	assert.Error(t, req.Validate())
}

func TestDocumentCreateValidate(t *testing.T) {
	valid := DocumentCreate{
		Title:    "2024 Budget",
		Category: "Financial Report",
	}

	req := valid
	assert.NoError(t, req.Validate())

	req = valid
	req.Category = "Misc"
	assert.Error(t, req.Validate())

	req = valid
	req.Title = ""
	assert.Error(t, req.Validate())
}
