package middleware

import (
	"fmt"
	"quizboard/config"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const callerKey = "userId"

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(config.AppConfig.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// JWTMiddleware resolves the caller from a bearer token. Requests without a valid
// token stop here with 401.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return Unauthorized(c)
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return Unauthorized(c)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Unauthorized(c)
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return Unauthorized(c)
	}

	c.Locals(callerKey, userID)
	return c.Next()
}

// CallerID returns the user id resolved by JWTMiddleware.
func CallerID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(callerKey).(string)
	return id, ok && id != ""
}

func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
}

func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("Not Found")
}

func InternalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).SendString("Internal Error")
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
