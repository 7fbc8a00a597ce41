package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuizzes(t *testing.T) {
	records := [][]string{
		{"Quiz", "Description", "Prompt", "Options", "Correct"},
		{"Capitals", "World capitals", "France?", "Paris | Rome", "0"},
		{"Math", "", "2 + 2?", "3|4|5", "1"},
		{"Capitals", "ignored", "Italy?", "Paris|Rome", "1"},
		{"Capitals", "", "", "a|b", "0"},
		{"Math", "", "1 + 1?", "2", "0"},
		{"Math", "", "3 + 3?", "5|6", "7"},
		{"", "", "Orphan?", "a|b", "0"},
	}

	quizzes, skipped := parseQuizzes(records)

	assert.Equal(t, 4, skipped)
	require.Len(t, quizzes, 2)

	capitals := quizzes[0]
	assert.Equal(t, "Capitals", capitals.Title)
	require.NotNil(t, capitals.Description)
	assert.Equal(t, "World capitals", *capitals.Description)
	require.Len(t, capitals.Questions, 2)
	assert.Equal(t, []string{"Paris", "Rome"}, []string(capitals.Questions[0].Options))
	assert.Equal(t, 1, capitals.Questions[1].CorrectOption)
	assert.Equal(t, 1, capitals.Questions[1].Position)

	math := quizzes[1]
	assert.Nil(t, math.Description)
	require.Len(t, math.Questions, 1)
	assert.Equal(t, "2 + 2?", math.Questions[0].Prompt)
}

func TestGetField_ShortRow(t *testing.T) {
	idx := map[string]int{"quiz": 0, "correct": 4}
	assert.Equal(t, "", getField([]string{"Only"}, idx, "correct"))
	assert.Equal(t, "Only", getField([]string{" Only "}, idx, "quiz"))
	assert.Equal(t, "", getField([]string{"Only"}, idx, "missing"))
}
