package routers

import (
	"quizboard/routers/authRoutes"
	"quizboard/routers/quizRoutes"
	"quizboard/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
)

// Setup registers every API route on app.
func Setup(app *fiber.App) {
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
}
