package quizController

import (
	"errors"
	"quizboard/database"
	"quizboard/logger"
	"quizboard/middleware"
	"quizboard/models"
	"quizboard/repository"
	"quizboard/utils"
	validators "quizboard/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func quizRepo() repository.QuizRepo {
	return repository.NewQuizRepo(database.Database.Db, logger.Log)
}

// CreateQuiz creates a quiz owned by the calling teacher
func CreateQuiz(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	reqData, ok := c.Locals("validatedQuiz").(*validators.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := models.Quiz{
		Title:       reqData.Title,
		Description: reqData.Description,
		UserID:      userID,
		IsActive:    reqData.IsActive == nil || *reqData.IsActive,
	}
	if reqData.ClosesOn != "" {
		closesAt, err := utils.EndOfDay(reqData.ClosesOn)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"closesOn": "closesOn must be a date in 2006-01-02 format!"})
		}
		quiz.ClosesAt = &closesAt
	}
	for i, q := range reqData.Questions {
		quiz.Questions = append(quiz.Questions, models.Question{
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Position:      i,
		})
	}

	if err := quizRepo().Create(c.UserContext(), &quiz); err != nil {
		logger.Log.Error("[QUIZ_CREATE]", "error", err)
		return middleware.InternalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// GetQuiz returns a quiz to its owner
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	quiz, err := quizRepo().GetOwned(c.UserContext(), c.Params("quizId"), userID)
	if err != nil {
		return quizError(c, "[QUIZ_GET]", err)
	}
	return c.JSON(quiz)
}

// DeleteQuiz hard-deletes a quiz owned by the caller and returns the deleted record
func DeleteQuiz(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	deleted, err := quizRepo().DeleteOwned(c.UserContext(), c.Params("quizId"), userID)
	if err != nil {
		return quizError(c, "[QUIZ_DELETE]", err)
	}
	return c.JSON(deleted)
}

// UpdateQuiz applies a validated partial update to a quiz owned by the caller
func UpdateQuiz(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	updates, ok := c.Locals("validatedQuizUpdate").(repository.QuizUpdates)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz, err := quizRepo().UpdateOwned(c.UserContext(), c.Params("quizId"), userID, updates)
	if err != nil {
		return quizError(c, "[QUIZ_UPDATE]", err)
	}
	return c.JSON(quiz)
}

func quizError(c *fiber.Ctx, tag string, err error) error {
	switch {
	case errors.Is(err, repository.ErrQuizNotFound):
		return middleware.NotFound(c)
	case errors.Is(err, repository.ErrNotOwner):
		return middleware.Unauthorized(c)
	default:
		logger.Log.Error(tag, "quiz_id", c.Params("quizId"), "error", err)
		return middleware.InternalError(c)
	}
}
