package services

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"studyjam/backend/catalog"
	"studyjam/backend/models"
)

// ComputeSummaries turns the raw participant rows into the ranked leaderboard and the
// per-lab completion tally. Every lab in labs appears in labCounts, including labs
// nobody has finished. Summaries come back sorted by rank ascending; participants with
// equal completed counts keep their input order, which fixes the display order of ties.
func ComputeSummaries(records []models.ParticipantRecord, labs []string) ([]models.ParticipantSummary, map[string]int) {
	labCounts := make(map[string]int, len(labs))
	for _, lab := range labs {
		labCounts[lab] = 0
	}

	summaries := make([]models.ParticipantSummary, 0, len(records))
	for _, record := range records {
		completed := []string{}
		for _, lab := range labs {
			if record.Completions[lab] == catalog.CompletedMarker {
				completed = append(completed, lab)
				labCounts[lab]++
			}
		}

		summaries = append(summaries, models.ParticipantSummary{
			Name:                record.Name,
			Email:               record.Email,
			CompletedLabs:       len(completed),
			NameOfCompletedLabs: completed,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CompletedLabs > summaries[j].CompletedLabs
	})

	for i := range summaries {
		summaries[i].Rank = i + 1
		summaries[i].Initials = Initials(summaries[i].Name)
		summaries[i].BadgeCount = summaries[i].CompletedLabs
		summaries[i].CompletionPercentage = percentage(summaries[i].CompletedLabs, len(labs))
	}

	return summaries, labCounts
}

// Initials builds display initials from the first letters of the first two
// whitespace-separated name tokens, uppercased.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch {
	case len(parts) > 1:
		return firstLetter(parts[0]) + firstLetter(parts[1])
	case len(parts) == 1:
		return firstLetter(parts[0])
	default:
		return ""
	}
}

func firstLetter(token string) string {
	r, _ := utf8.DecodeRuneInString(token)
	return strings.ToUpper(string(r))
}

// HomeStatsFrom shapes the home page statistics out of an aggregation result.
// Zero participants yields the canonical empty payload rather than an error.
func HomeStatsFrom(summaries []models.ParticipantSummary, labCounts map[string]int, labs []string) models.HomeStats {
	stats := models.HomeStats{
		TopPerformer:        models.NoTopPerformer(),
		BadgeCompletionRate: labCounts,
		BadgePopularity:     []models.LabPopularity{},
	}

	total := len(summaries)
	stats.TotalParticipants = total
	if total == 0 {
		return stats
	}
	stats.BadgePopularity = popularity(labCounts, labs)

	finishedAll := 0
	totalBadges := 0
	for _, s := range summaries {
		if s.CompletedLabs == len(labs) {
			finishedAll++
		}
		totalBadges += s.CompletedLabs
	}
	stats.CompletionPercentage = int(math.Round(float64(finishedAll) / float64(total) * 100))
	stats.AverageProgress = int(math.Round(float64(totalBadges) / float64(total)))

	// The list is already rank-ordered, so the top performer is the first entry.
	if top := summaries[0]; top.CompletedLabs > 0 {
		stats.TopPerformer = models.TopPerformer{
			Name:     top.Name,
			Initials: top.Initials,
			Badges:   top.CompletedLabs,
		}
	}

	return stats
}

const popularityLimit = 6

// popularity ranks labs by completion count, descending, capped at popularityLimit.
// Counts tie in catalog order.
func popularity(labCounts map[string]int, labs []string) []models.LabPopularity {
	ranked := make([]models.LabPopularity, 0, len(labs))
	for _, lab := range labs {
		ranked = append(ranked, models.LabPopularity{Lab: lab, Count: labCounts[lab]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > popularityLimit {
		ranked = ranked[:popularityLimit]
	}
	return ranked
}

func percentage(completed, totalLabs int) int {
	if totalLabs == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(totalLabs) * 100))
}
