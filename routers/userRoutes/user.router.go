package userRoutes

import (
	controllers "quizboard/controllers/userControllers"
	"quizboard/middleware"
	validators "quizboard/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/me", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Patch("/me", middleware.JWTMiddleware, validators.UpdateProfile(), controllers.UpdateProfile)

	teacherGroup := app.Group("/api/teachers")

	teacherGroup.Post("/:teacherId/follow", middleware.JWTMiddleware, controllers.FollowTeacher)
	teacherGroup.Delete("/:teacherId/follow", middleware.JWTMiddleware, controllers.UnfollowTeacher)
}
