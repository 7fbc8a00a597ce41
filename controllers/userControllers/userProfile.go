package userControllers

import (
	"errors"
	"quizboard/database"
	"quizboard/logger"
	"quizboard/middleware"
	"quizboard/repository"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller with the teachers they follow
func GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	users := repository.NewUserRepo(database.Database.Db, logger.Log)
	ctx := c.UserContext()

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return middleware.Unauthorized(c)
		}
		logger.Log.Error("[PROFILE_GET]", "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	following, err := users.Following(ctx, userID)
	if err != nil {
		logger.Log.Error("[PROFILE_GET]", "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	teachers := make([]fiber.Map, 0, len(following))
	for _, t := range following {
		teachers = append(teachers, fiber.Map{"id": t.ID, "name": t.Name})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":      user,
		"following": teachers,
	})
}

// UpdateProfile renames the caller
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.Unauthorized(c)
	}

	name, ok := c.Locals("validatedName").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := repository.NewUserRepo(database.Database.Db, logger.Log).UpdateName(c.UserContext(), userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return middleware.Unauthorized(c)
		}
		logger.Log.Error("[PROFILE_UPDATE]", "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
