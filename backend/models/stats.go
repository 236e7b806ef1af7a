package models

import "encoding/json"

// TopPerformer is the rank-1 participant shown on the home page.
type TopPerformer struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Badges   int    `json:"badges"`
}

// NoTopPerformer is the sentinel used when nobody has completed a single lab yet.
func NoTopPerformer() TopPerformer {
	return TopPerformer{Name: "N/A", Initials: "N/A", Badges: 0}
}

// LabPopularity is one entry of the badge popularity ranking. It serializes as a
// two-element [name, count] array to match the dashboard's chart input format.
type LabPopularity struct {
	Lab   string
	Count int
}

func (lp LabPopularity) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{lp.Lab, lp.Count})
}

func (lp *LabPopularity) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) > 0 {
		if err := json.Unmarshal(pair[0], &lp.Lab); err != nil {
			return err
		}
	}
	if len(pair) > 1 {
		if err := json.Unmarshal(pair[1], &lp.Count); err != nil {
			return err
		}
	}
	return nil
}

// HomeStats is the /api/home-data payload.
type HomeStats struct {
	TotalParticipants    int             `json:"total_participants"`
	CompletionPercentage int             `json:"completion_percentage"`
	AverageProgress      int             `json:"average_progress"`
	TopPerformer         TopPerformer    `json:"top_performer"`
	BadgeCompletionRate  map[string]int  `json:"badge_completion_rate"`
	BadgePopularity      []LabPopularity `json:"badge_popularity"`
}
