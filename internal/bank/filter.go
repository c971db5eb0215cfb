// Package bank filters the shared question catalogue the way the question bank
// page searches it.
package bank

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"dsastreak/internal/models"
)

// ErrInvalidDifficulty is returned for a difficulty filter that is neither a
// known difficulty nor "any".
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Criteria selects questions from the catalogue. Empty Text and Topic match
// everything, as does models.DifficultyAny.
type Criteria struct {
	Text       string
	Difficulty models.Difficulty
	Topic      string
}

// ParseDifficulty converts a filter value to a Difficulty. "", "all" and "any"
// mean no difficulty filter.
func ParseDifficulty(s string) (models.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "any":
		return models.DifficultyAny, nil
	case "easy":
		return models.DifficultyEasy, nil
	case "medium":
		return models.DifficultyMedium, nil
	case "hard":
		return models.DifficultyHard, nil
	}
	return models.DifficultyAny, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// Filter returns the questions of catalogue matching c, in catalogue order.
// Text matches the title or the platform, Topic matches any topic, both as
// case-insensitive substrings. The catalogue is not modified.
func Filter(catalogue []models.Question, c Criteria) []models.Question {
	// A Caser keeps state between calls and must not be shared.
	fold := cases.Fold()
	text := fold.String(c.Text)
	topic := fold.String(c.Topic)

	matched := make([]models.Question, 0, len(catalogue))
	for i := range catalogue {
		q := &catalogue[i]
		if !matchesText(fold, q, text) {
			continue
		}
		if c.Difficulty != models.DifficultyAny && !q.HasDifficulty(c.Difficulty) {
			continue
		}
		if !matchesTopic(fold, q, topic) {
			continue
		}
		matched = append(matched, *q)
	}
	return matched
}

func matchesText(fold cases.Caser, q *models.Question, text string) bool {
	if text == "" {
		return true
	}
	if strings.Contains(fold.String(q.Title), text) {
		return true
	}
	return q.Platform != nil && strings.Contains(fold.String(*q.Platform), text)
}

func matchesTopic(fold cases.Caser, q *models.Question, topic string) bool {
	if topic == "" {
		return true
	}
	for _, t := range q.Topics {
		if strings.Contains(fold.String(t), topic) {
			return true
		}
	}
	return false
}

// DistinctTopics lists every topic used in catalogue once, ignoring case, in
// case-insensitive alphabetical order. The first spelling seen is kept.
func DistinctTopics(catalogue []models.Question) []string {
	fold := cases.Fold()
	seen := make(map[string]struct{})
	topics := make([]string, 0)

	for _, q := range catalogue {
		for _, t := range q.Topics {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			key := fold.String(t)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			topics = append(topics, t)
		}
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return fold.String(topics[i]) < fold.String(topics[j])
	})
	return topics
}
