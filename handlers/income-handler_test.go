package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasImportExtension(t *testing.T) {
	assert.True(t, hasImportExtension("income.csv"))
	assert.True(t, hasImportExtension("Q1 income.xlsx"))
	assert.True(t, hasImportExtension("legacy.xls"))
	assert.False(t, hasImportExtension("income.pdf"))
	assert.False(t, hasImportExtension("income"))
	assert.False(t, hasImportExtension("csv"))
}
