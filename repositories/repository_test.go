package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildExcludesArchivedByDefault(t *testing.T) {
	query := ListFilter{}.Build(true)

	require.Contains(t, query, "archivedAt")
	assert.Nil(t, query["archivedAt"])
}

func TestBuildIncludeArchived(t *testing.T) {
	query := ListFilter{IncludeArchived: true}.Build(true)

	assert.NotContains(t, query, "archivedAt")
}

func TestBuildNoSoftDelete(t *testing.T) {
	query := ListFilter{}.Build(false)

	assert.Empty(t, query)
}

func TestBuildEquals(t *testing.T) {
	filter := ListFilter{
		Equals: map[string]string{
			"status":    "In Progress",
			"projectId": "",
		},
	}
	query := filter.Build(false)

	assert.Equal(t, "In Progress", query["status"])
	assert.NotContains(t, query, "projectId", "empty values must not filter")
}

func TestBuildContains(t *testing.T) {
	filter := ListFilter{
		Contains: map[string]string{"vendorName": "acme"},
	}
	query := filter.Build(false)

	assert.Equal(t, bson.M{"$regex": "acme", "$options": "i"}, query["vendorName"])
}

func TestBuildSearch(t *testing.T) {
	filter := ListFilter{
		Search:       "roof",
		SearchFields: []string{"name", "description"},
	}
	query := filter.Build(true)

	or, ok := query["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"name": bson.M{"$regex": "roof", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"description": bson.M{"$regex": "roof", "$options": "i"}}, or[1])
	assert.Nil(t, query["archivedAt"])
}

func TestBuildSearchWithoutFields(t *testing.T) {
	query := ListFilter{Search: "roof"}.Build(false)

	assert.NotContains(t, query, "$or")
}

func TestBuildCombined(t *testing.T) {
	filter := ListFilter{
		Equals:       map[string]string{"category": "Repairs"},
		Contains:     map[string]string{"vendor": "plumb"},
		Search:       "leak",
		SearchFields: []string{"description", "vendor"},
	}
	query := filter.Build(true)

	assert.Len(t, query, 4) // archivedAt, category, vendor, $or
}
