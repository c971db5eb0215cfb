package bank

import (
	"sort"

	"dsastreak/internal/models"
)

// difficultyRank orders Easy, Medium, Hard, then unrated questions.
func difficultyRank(d *models.Difficulty) int {
	if d == nil {
		return len(models.Difficulties)
	}
	for i, known := range models.Difficulties {
		if *d == known {
			return i
		}
	}
	return len(models.Difficulties)
}

// Combine returns the catalogue a user browses: the shared questions plus the
// user's own, ordered by difficulty and then title. Neither input is modified.
func Combine(shared, owned []models.Question) []models.Question {
	all := make([]models.Question, 0, len(shared)+len(owned))
	all = append(all, shared...)
	all = append(all, owned...)

	sort.SliceStable(all, func(i, j int) bool {
		ri, rj := difficultyRank(all[i].Difficulty), difficultyRank(all[j].Difficulty)
		if ri != rj {
			return ri < rj
		}
		return all[i].Title < all[j].Title
	})
	return all
}
