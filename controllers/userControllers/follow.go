package userControllers

import (
	"errors"
	"quizboard/database"
	"quizboard/logger"
	"quizboard/middleware"
	"quizboard/models"
	"quizboard/repository"

	"github.com/gofiber/fiber/v2"
)

// FollowTeacher subscribes the caller's dashboard to a teacher's active quizzes
func FollowTeacher(c *fiber.Ctx) error {
	return changeFollow(c, true)
}

// UnfollowTeacher removes a teacher from the caller's dashboard
func UnfollowTeacher(c *fiber.Ctx) error {
	return changeFollow(c, false)
}

func changeFollow(c *fiber.Ctx, follow bool) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	users := repository.NewUserRepo(database.Database.Db, logger.Log)
	ctx := c.UserContext()
	teacherID := c.Params("teacherId")

	teacher, err := users.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
		}
		logger.Log.Error("[FOLLOW]", "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	if teacher.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	if follow {
		if teacher.ID == userID {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot follow yourself!", nil)
		}
		err = users.Follow(ctx, userID, teacher.ID)
	} else {
		err = users.Unfollow(ctx, userID, teacher.ID)
	}
	if err != nil {
		logger.Log.Error("[FOLLOW]", "follow", follow, "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	message := "Teacher unfollowed successfully!"
	if follow {
		message = "Teacher followed successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"teacherId":   teacher.ID,
		"teacherName": teacher.Name,
	})
}
