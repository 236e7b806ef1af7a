package repository

import (
	"errors"

	"studyjam/backend/models"

	"gorm.io/gorm"
)

// ParticipantSource is what the controllers depend on, so tests can swap in
// fixture data without a live database.
type ParticipantSource interface {
	FetchAll() ([]models.ParticipantRecord, error)
}

// ParticipantRepository reads the participants table from the hosted store.
// One row per participant: name, email, and one marker column per catalog lab.
type ParticipantRepository struct {
	DB   *gorm.DB
	Labs []string
}

func NewParticipantRepository(db *gorm.DB, labs []string) *ParticipantRepository {
	return &ParticipantRepository{DB: db, Labs: labs}
}

// FetchAll loads every participant row in a single query. The lab columns carry
// spaces and punctuation straight from the sheet import, so rows come back as
// loosely-typed maps and are converted to typed records here, the only place
// where the untyped bridge to the external store is crossed.
func (r *ParticipantRepository) FetchAll() ([]models.ParticipantRecord, error) {
	if r.DB == nil {
		return nil, errors.New("participant store is not connected")
	}

	var rows []map[string]interface{}
	if err := r.DB.Table("participants").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]models.ParticipantRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, RecordFromRow(row, r.Labs))
	}
	return records, nil
}

// RecordFromRow converts one raw store row into a ParticipantRecord, keeping only
// the columns named by the catalog. Missing or non-string values are dropped;
// a missing name or email falls back to "N/A" like the rest of the dashboard.
func RecordFromRow(row map[string]interface{}, labs []string) models.ParticipantRecord {
	record := models.ParticipantRecord{
		Name:        stringField(row, "name"),
		Email:       stringField(row, "email"),
		Completions: make(map[string]string, len(labs)),
	}

	for _, lab := range labs {
		if marker, ok := row[lab].(string); ok {
			record.Completions[lab] = marker
		}
	}
	return record
}

func stringField(row map[string]interface{}, key string) string {
	if value, ok := row[key].(string); ok {
		return value
	}
	return "N/A"
}
