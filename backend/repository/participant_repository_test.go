package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordFromRow(t *testing.T) {
	labs := []string{"Lab A", "Lab B", "Lab C"}
	row := map[string]interface{}{
		"name":       "Ada Lovelace",
		"email":      "ada@example.com",
		"Lab A":      "Yes",
		"Lab B":      "No",
		"Unknown":    "Yes", // not in the catalog, ignored
		"created_at": "2025-01-01",
	}

	record := RecordFromRow(row, labs)

	assert.Equal(t, "Ada Lovelace", record.Name)
	assert.Equal(t, "ada@example.com", record.Email)
	assert.Equal(t, map[string]string{"Lab A": "Yes", "Lab B": "No"}, record.Completions)
	assert.NotContains(t, record.Completions, "Unknown")
	assert.NotContains(t, record.Completions, "Lab C")
}

func TestRecordFromRowMissingFields(t *testing.T) {
	labs := []string{"Lab A"}

	record := RecordFromRow(map[string]interface{}{}, labs)

	assert.Equal(t, "N/A", record.Name)
	assert.Equal(t, "N/A", record.Email)
	assert.Empty(t, record.Completions)
}

func TestRecordFromRowNonStringValues(t *testing.T) {
	labs := []string{"Lab A", "Lab B"}
	row := map[string]interface{}{
		"name":  42,  // wrong type, falls back
		"email": nil, // NULL column
		"Lab A": true,
		"Lab B": "Yes",
	}

	record := RecordFromRow(row, labs)

	assert.Equal(t, "N/A", record.Name)
	assert.Equal(t, "N/A", record.Email)
	assert.Equal(t, map[string]string{"Lab B": "Yes"}, record.Completions)
}

func TestFetchAllWithoutConnection(t *testing.T) {
	repo := NewParticipantRepository(nil, []string{"Lab A"})

	records, err := repo.FetchAll()

	assert.Error(t, err)
	assert.Nil(t, records)
}
