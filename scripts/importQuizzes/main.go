package main

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"

	"quizboard/config"
	"quizboard/database"
	"quizboard/logger"
	"quizboard/models"
	"quizboard/repository"
)

// Imports quizzes from a CSV with the header
//
//	quiz,description,prompt,options,correct
//
// where options is "|" separated and correct is the zero-based index of the right
// option. Rows sharing a quiz title become one quiz owned by IMPORT_OWNER_EMAIL.
func main() {
	config.LoadConfig()
	log, err := logger.Init(config.AppConfig.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database.ConnectDb()

	path := "quizzes.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatal("Failed to open CSV file", "path", path, "error", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatal("Failed to read CSV", "error", err)
	}
	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	ctx := context.Background()
	users := repository.NewUserRepo(database.Database.Db, log)
	owner, err := users.GetByEmail(ctx, os.Getenv("IMPORT_OWNER_EMAIL"))
	if err != nil {
		log.Fatal("Import owner not found", "error", err)
	}
	if owner.Role != models.RoleTeacher {
		log.Fatal("Import owner must be a teacher", "role", owner.Role)
	}

	quizzes, skipped := parseQuizzes(records)
	log.Info("Parsed CSV", "quizzes", len(quizzes), "skipped_rows", skipped)

	quizRepo := repository.NewQuizRepo(database.Database.Db, log)
	inserted := 0
	for i := range quizzes {
		quizzes[i].UserID = owner.ID
		quizzes[i].IsActive = true
		if err := quizRepo.Create(ctx, &quizzes[i]); err != nil {
			log.Error("Error inserting quiz", "title", quizzes[i].Title, "error", err)
			continue
		}
		inserted++
	}

	log.Info("Import complete", "inserted", inserted, "skipped_rows", skipped)
}

// parseQuizzes groups rows by quiz title, keeping first-seen order for quizzes and
// row order for questions. Rows without a prompt or with a bad correct index are skipped.
func parseQuizzes(records [][]string) ([]models.Quiz, int) {
	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var quizzes []models.Quiz
	byTitle := make(map[string]int)
	skipped := 0

	for _, row := range records[1:] {
		title := getField(row, headerIndex, "quiz")
		q, err := parseQuestion(row, headerIndex)
		if title == "" || err != nil {
			skipped++
			continue
		}

		idx, ok := byTitle[title]
		if !ok {
			quiz := models.Quiz{Title: title}
			if desc := getField(row, headerIndex, "description"); desc != "" {
				quiz.Description = &desc
			}
			quizzes = append(quizzes, quiz)
			idx = len(quizzes) - 1
			byTitle[title] = idx
		}

		q.Position = len(quizzes[idx].Questions)
		quizzes[idx].Questions = append(quizzes[idx].Questions, q)
	}

	return quizzes, skipped
}

func parseQuestion(row []string, headerIndex map[string]int) (models.Question, error) {
	prompt := getField(row, headerIndex, "prompt")
	if prompt == "" {
		return models.Question{}, errors.New("missing prompt")
	}

	var options []string
	for _, o := range strings.Split(getField(row, headerIndex, "options"), "|") {
		if o = strings.TrimSpace(o); o != "" {
			options = append(options, o)
		}
	}
	if len(options) < 2 {
		return models.Question{}, errors.New("need at least two options")
	}

	correct, err := strconv.Atoi(getField(row, headerIndex, "correct"))
	if err != nil || correct < 0 || correct >= len(options) {
		return models.Question{}, errors.New("invalid correct index")
	}

	return models.Question{Prompt: prompt, Options: options, CorrectOption: correct}, nil
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
