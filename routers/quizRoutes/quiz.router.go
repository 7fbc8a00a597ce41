package quizRoutes

import (
	controllers "quizboard/controllers/quiz"
	"quizboard/middleware"
	"quizboard/models"
	validators "quizboard/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz management and dashboard routes
func SetupQuizRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/dashboardquizzes", middleware.JWTMiddleware, controllers.GetDashboardQuizzes)

	quizGroup := api.Group("/quizzes")
	quizGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), validators.CreateQuiz(), controllers.CreateQuiz)
	quizGroup.Get("/:quizId", middleware.JWTMiddleware, controllers.GetQuiz)
	quizGroup.Patch("/:quizId", middleware.JWTMiddleware, middleware.RequireQuizOwner("[QUIZ_UPDATE]"), validators.UpdateQuiz(), controllers.UpdateQuiz)
	quizGroup.Delete("/:quizId", middleware.JWTMiddleware, controllers.DeleteQuiz)
	quizGroup.Post("/:quizId/attempts", middleware.JWTMiddleware, validators.SubmitAttempt(), controllers.SubmitAttempt)
}
