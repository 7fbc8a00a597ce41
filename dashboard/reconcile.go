// Package dashboard is the consumer side of the dashboard quizzes endpoint: it
// fetches both lists, removes attempted quizzes from the active list and turns
// the result into a display model.
package dashboard

import "quizboard/models"

// Reconcile returns active without the quizzes whose id appears in attempted.
// Only ids are compared and the order of active is kept.
func Reconcile(active, attempted []models.QuizWithProgress) []models.QuizWithProgress {
	done := make(map[string]struct{}, len(attempted))
	for _, q := range attempted {
		done[q.ID] = struct{}{}
	}

	out := make([]models.QuizWithProgress, 0, len(active))
	for _, q := range active {
		if _, ok := done[q.ID]; ok {
			continue
		}
		out = append(out, q)
	}
	return out
}
