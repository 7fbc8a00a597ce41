package quizController

import (
	"quizboard/database"
	"quizboard/logger"
	"quizboard/middleware"
	"quizboard/models"
	"quizboard/repository"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardQuizzes returns the caller's active and attempted quizzes. The lists
// are sourced independently and can overlap; consumers reconcile them.
func GetDashboardQuizzes(c *fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		userID = callerID
	}
	if userID != callerID {
		return middleware.Unauthorized(c)
	}

	repo := repository.NewDashboardRepo(database.Database.Db, logger.Log)
	ctx := c.UserContext()

	active, err := repo.ActiveForLearner(ctx, userID)
	if err != nil {
		logger.Log.Error("[DASHBOARD_QUIZZES]", "error", err)
		return middleware.InternalError(c)
	}
	attempted, err := repo.AttemptedByLearner(ctx, userID)
	if err != nil {
		logger.Log.Error("[DASHBOARD_QUIZZES]", "error", err)
		return middleware.InternalError(c)
	}

	return c.JSON(models.DashboardQuizzes{
		ActiveQuizzes:    active,
		AttemptedQuizzes: attempted,
	})
}
