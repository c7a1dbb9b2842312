// Package matching scores pairs of lost and found reports and decides which
// pairs are strong enough to surface to the owner. The scoring is a coarse,
// additive substring/token heuristic rather than a normalized similarity
// metric: inputs are short, noisy, user-typed free text, and a weighted
// heuristic is cheap and explainable while still cutting obvious duplicates.
package matching

import (
	"sort"
	"strings"
	"time"

	"github.com/Sami21234/lostfound-backend/models"
)

// Default classification thresholds. A candidate below Weak is not a match at
// all; at or above Strong it is eligible for automatic resolution.
const (
	DefaultWeakThreshold   = 60
	DefaultStrongThreshold = 80
)

// Score weights.
const (
	nameContainsBonus     = 50
	nameTokenBonus        = 10
	descriptionTokenBonus = 5
	locationContainsBonus = 30
	dateProximityBonus    = 20

	dateProximityDays = 7

	// Description tokens this short ("the", "a", "red") carry no signal.
	minDescriptionTokenLen = 3
)

// Config carries the classification thresholds so deployments can tune them
// without a code change.
type Config struct {
	WeakThreshold   int
	StrongThreshold int
}

// DefaultConfig returns the canonical 60/80 threshold pair.
func DefaultConfig() Config {
	return Config{
		WeakThreshold:   DefaultWeakThreshold,
		StrongThreshold: DefaultStrongThreshold,
	}
}

// Report is the kind-independent view of a lost or found report that the
// engine scores. EventDate is free-form text; parsing may fail and a failed
// parse simply forfeits the date proximity bonus.
type Report struct {
	ItemName    string
	Description string
	Location    string
	EventDate   string
}

// LostView adapts a stored lost report for scoring.
func LostView(r models.LostReport) Report {
	return Report{
		ItemName:    r.ItemName,
		Description: r.Description,
		Location:    r.Location,
		EventDate:   r.DateLost,
	}
}

// FoundView adapts a stored found report for scoring.
func FoundView(r models.FoundReport) Report {
	return Report{
		ItemName:    r.ItemName,
		Description: r.Description,
		Location:    r.Location,
		EventDate:   r.DateFound,
	}
}

// Match pairs a candidate's position in the input slice with its score.
type Match struct {
	Index int
	Score int
}

// Score computes the similarity score between an incoming report and one
// candidate of the opposite kind. It is a pure function: no I/O, never errors.
func Score(incoming, candidate Report) int {
	score := 0

	newName := strings.ToLower(incoming.ItemName)
	itemName := strings.ToLower(candidate.ItemName)

	// Name containment, checked in both directions
	if strings.Contains(itemName, newName) || strings.Contains(newName, itemName) {
		score += nameContainsBonus
	}

	// Shared name tokens. Repeated tokens in the incoming name count
	// repeatedly.
	itemWords := strings.Fields(itemName)
	for _, word := range strings.Fields(newName) {
		if containsWord(itemWords, word) {
			score += nameTokenBonus
		}
	}

	// Shared description tokens, skipped when either description is empty
	newDescription := strings.ToLower(incoming.Description)
	itemDescription := strings.ToLower(candidate.Description)
	if newDescription != "" && itemDescription != "" {
		itemDescWords := strings.Fields(itemDescription)
		for _, word := range strings.Fields(newDescription) {
			if len(word) > minDescriptionTokenLen && containsWord(itemDescWords, word) {
				score += descriptionTokenBonus
			}
		}
	}

	// Location containment, both directions, skipped when either is empty
	newLocation := strings.ToLower(incoming.Location)
	itemLocation := strings.ToLower(candidate.Location)
	if newLocation != "" && itemLocation != "" {
		if strings.Contains(itemLocation, newLocation) || strings.Contains(newLocation, itemLocation) {
			score += locationContainsBonus
		}
	}

	// Date proximity. A missing or malformed date never aborts scoring, it
	// just contributes nothing.
	if newDate, ok := parseEventDate(incoming.EventDate); ok {
		if itemDate, ok := parseEventDate(candidate.EventDate); ok {
			days := newDate.Sub(itemDate).Hours() / 24
			if days < 0 {
				days = -days
			}
			if days <= dateProximityDays {
				score += dateProximityBonus
			}
		}
	}

	return score
}

// FindMatches scores the incoming report against every candidate and returns
// the matches at or above the weak threshold, ordered by score descending.
// Ties keep the candidates' relative order in the input slice.
func FindMatches(incoming Report, candidates []Report, cfg Config) []Match {
	var matches []Match
	for i, candidate := range candidates {
		if score := Score(incoming, candidate); score >= cfg.WeakThreshold {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	return matches
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

// eventDateLayouts covers the date forms the upstream clients actually send.
var eventDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

func parseEventDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
