package quizValidator

import (
	"encoding/json"
	"quizboard/logger"
	"quizboard/middleware"
	"quizboard/repository"
	"quizboard/validators"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type QuestionInput struct {
	Prompt        string   `json:"prompt" validate:"required,max=1000"`
	Options       []string `json:"options" validate:"min=2,dive,required"`
	CorrectOption int      `json:"correctOption" validate:"gte=0"`
}

type CreateQuizRequest struct {
	Title       string          `json:"title" validate:"required,min=3,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	IsActive    *bool           `json:"isActive"`
	ClosesOn    string          `json:"closesOn" validate:"omitempty,datetime=2006-01-02"`
	Questions   []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

type SubmitAttemptRequest struct {
	Answers []int `json:"answers" validate:"required,min=1"`
}

// CreateQuiz validates quiz creation request
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Description != nil {
			d := strings.TrimSpace(*reqData.Description)
			reqData.Description = &d
		}

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		for i, q := range reqData.Questions {
			if q.CorrectOption >= len(q.Options) {
				errors["questions["+strconv.Itoa(i)+"].correctOption"] = "correctOption must point at one of the options!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validates a partial update. Only title, description, isActive and
// closesAt may be patched; any other key (userId, id, ...) is rejected. Title and
// description follow the same rules as CreateQuizRequest. Runs after the
// ownership gate, so a body that is not a JSON object fails the request.
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &raw); err != nil || raw == nil {
			logger.Log.Error("[QUIZ_UPDATE] malformed body", "quiz_id", c.Params("quizId"), "error", err)
			return middleware.InternalError(c)
		}

		errors := make(map[string]string)
		updates := repository.QuizUpdates{}

		for key, value := range raw {
			switch key {
			case "title":
				var title string
				if err := json.Unmarshal(value, &title); err != nil {
					errors[key] = "Title must be a string!"
					continue
				}
				title = strings.TrimSpace(title)
				if msg := validators.Var(key, title, createRule("Title")); msg != "" {
					errors[key] = msg
				} else {
					updates["title"] = title
				}
			case "description":
				if isNull(value) {
					updates["description"] = nil
					continue
				}
				var desc string
				if err := json.Unmarshal(value, &desc); err != nil {
					errors[key] = "Description must be a string or null!"
					continue
				}
				desc = strings.TrimSpace(desc)
				if msg := validators.Var(key, desc, createRule("Description")); msg != "" {
					errors[key] = msg
				} else {
					updates["description"] = desc
				}
			case "isActive":
				var active bool
				if err := json.Unmarshal(value, &active); err != nil {
					errors[key] = "isActive must be a boolean!"
				} else {
					updates["is_active"] = active
				}
			case "closesAt":
				if isNull(value) {
					updates["closes_at"] = nil
					continue
				}
				var at time.Time
				if err := json.Unmarshal(value, &at); err != nil {
					errors[key] = "closesAt must be an RFC 3339 timestamp or null!"
				} else {
					updates["closes_at"] = at
				}
			default:
				errors[key] = "Field cannot be updated!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizUpdate", updates)
		return c.Next()
	}
}

// SubmitAttempt validates a quiz attempt submission
func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitAttemptRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}

// createRule returns the validate tag of a CreateQuizRequest field.
func createRule(field string) string {
	f, _ := reflect.TypeOf(CreateQuizRequest{}).FieldByName(field)
	return f.Tag.Get("validate")
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
