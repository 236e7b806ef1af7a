package models

// ParticipantRecord is one row of the participants table after the loosely-typed
// store row has been converted at the repository boundary. Completions maps a
// catalog lab name to the raw marker value stored for this participant.
type ParticipantRecord struct {
	Name        string
	Email       string
	Completions map[string]string
}

// ParticipantSummary is the derived leaderboard entry for one participant.
type ParticipantSummary struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	CompletedLabs        int      `json:"completed_labs"`
	NameOfCompletedLabs  []string `json:"name_of_completed_labs"`
	Rank                 int      `json:"rank"`
	Initials             string   `json:"initials"`
	BadgeCount           int      `json:"badge_count"`
	CompletionPercentage int      `json:"completion_percentage"`
}

// ProgressData is the /api/progress-data payload.
type ProgressData struct {
	Labs         []string             `json:"labs"`
	Participants []ParticipantSummary `json:"participants"`
}
