package middleware

import (
	"errors"
	"quizboard/database"
	"quizboard/logger"
	"quizboard/models"
	"quizboard/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that lets the request through only when the
// caller's stored role equals role. Must run after JWTMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := CallerID(c)
		if !ok {
			return Unauthorized(c)
		}

		var user models.User
		err := database.Database.Db.WithContext(c.UserContext()).
			Select("id", "role").
			Where("id = ?", userID).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Unauthorized(c)
			}
			logger.Log.Error("[ROLE_CHECK]", "error", err)
			return InternalError(c)
		}

		if user.Role != role {
			return c.Status(fiber.StatusForbidden).SendString("Forbidden")
		}
		return c.Next()
	}
}

// RequireQuizOwner lets the request through only when the :quizId quiz exists and
// belongs to the caller, before anything looks at the body. tag prefixes the log
// line of unexpected failures. Must run after JWTMiddleware.
func RequireQuizOwner(tag string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := CallerID(c)
		if !ok {
			return Unauthorized(c)
		}

		quizzes := repository.NewQuizRepo(database.Database.Db, logger.Log)
		_, err := quizzes.GetOwned(c.UserContext(), c.Params("quizId"), userID)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, repository.ErrQuizNotFound):
			return NotFound(c)
		case errors.Is(err, repository.ErrNotOwner):
			return Unauthorized(c)
		default:
			logger.Log.Error(tag, "quiz_id", c.Params("quizId"), "error", err)
			return InternalError(c)
		}
	}
}
