package quizController

import (
	"errors"
	"quizboard/database"
	"quizboard/logger"
	"quizboard/middleware"
	"quizboard/models"
	"quizboard/repository"
	validators "quizboard/validators/quiz"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SubmitAttempt scores the caller's answers and records a completion for the quiz
func SubmitAttempt(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	reqData, ok := c.Locals("validatedAttempt").(*validators.SubmitAttemptRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz, err := quizRepo().GetByID(c.UserContext(), c.Params("quizId"))
	if err != nil {
		if errors.Is(err, repository.ErrQuizNotFound) {
			return middleware.NotFound(c)
		}
		logger.Log.Error("[QUIZ_ATTEMPT]", "quiz_id", c.Params("quizId"), "error", err)
		return middleware.InternalError(c)
	}

	if !quiz.IsActive {
		return c.Status(fiber.StatusConflict).SendString("Quiz is not active")
	}

	if len(reqData.Answers) != len(quiz.Questions) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"answers": "Expected " + strconv.Itoa(len(quiz.Questions)) + " answers!",
		})
	}

	score := 0
	for i, q := range quiz.Questions {
		if reqData.Answers[i] == q.CorrectOption {
			score++
		}
	}

	attempt := models.QuizAttempt{
		QuizID:   quiz.ID,
		UserID:   userID,
		Answers:  reqData.Answers,
		Score:    score,
		MaxScore: len(quiz.Questions),
	}

	attempts := repository.NewAttemptRepo(database.Database.Db, logger.Log)
	if err := attempts.Create(c.UserContext(), &attempt); err != nil {
		logger.Log.Error("[QUIZ_ATTEMPT]", "quiz_id", quiz.ID, "error", err)
		return middleware.InternalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt":  attempt,
		"progress": attempt.Progress(),
	})
}
