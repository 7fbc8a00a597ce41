package dashboard

import (
	"fmt"
	"io"
	"strings"

	"quizboard/models"
)

const (
	ActiveTitle    = "Active Quizzes"
	AttemptedTitle = "Attempted Quizzes"
	EmptyMessage   = "No quizzes found"
)

type Section struct {
	Title string
	Items []models.QuizWithProgress
}

// View is what the dashboard shows: two counters, the non-empty sections and,
// when there is nothing at all, the empty message.
type View struct {
	ActiveCount    int
	AttemptedCount int
	Sections       []Section
	Empty          bool
}

func BuildView(d models.DashboardQuizzes) View {
	active := Reconcile(d.ActiveQuizzes, d.AttemptedQuizzes)
	attempted := d.AttemptedQuizzes

	v := View{
		ActiveCount:    len(active),
		AttemptedCount: len(attempted),
	}
	if len(active) > 0 {
		v.Sections = append(v.Sections, Section{Title: ActiveTitle, Items: active})
	}
	if len(attempted) > 0 {
		v.Sections = append(v.Sections, Section{Title: AttemptedTitle, Items: attempted})
	}
	v.Empty = len(active) == 0 && len(attempted) == 0
	return v
}

// GridColumns is the number of quiz cards per row for the page at path.
func GridColumns(path string) int {
	if strings.Contains(path, "collection") || strings.Contains(path, "instructors") {
		return 4
	}
	return 3
}

// Render writes v as text, laying cards out in rows of GridColumns(path).
func Render(w io.Writer, v View, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s: %d]  [Attempted: %d]\n", ActiveTitle, v.ActiveCount, v.AttemptedCount)

	cols := GridColumns(path)
	for _, s := range v.Sections {
		fmt.Fprintf(&b, "\n%s\n", s.Title)
		for i := 0; i < len(s.Items); i += cols {
			end := i + cols
			if end > len(s.Items) {
				end = len(s.Items)
			}
			cards := make([]string, 0, end-i)
			for _, q := range s.Items[i:end] {
				cards = append(cards, card(q))
			}
			b.WriteString(strings.Join(cards, " | "))
			b.WriteString("\n")
		}
	}

	if v.Empty {
		fmt.Fprintf(&b, "\n%s\n", EmptyMessage)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func card(q models.QuizWithProgress) string {
	s := q.Title
	if q.TeacherName != "" {
		s += " by " + q.TeacherName
	}
	if q.Description != nil && *q.Description != "" {
		s += ": " + *q.Description
	}
	if q.Progress != nil {
		s += fmt.Sprintf(" (%.0f%%)", *q.Progress)
	}
	if !q.IsActive {
		s += " [closed]"
	}
	return s
}
