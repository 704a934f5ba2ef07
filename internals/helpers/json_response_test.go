// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=STUDENT FACULTY"`
}

func TestValidationMapFlattensFieldErrors(t *testing.T) {
	err := validator.New().Struct(signupForm{
		Email:    "not-an-email",
		Password: "short",
		Role:     "JANITOR",
	})
	require.Error(t, err)

	m := ValidationMap(err)

	require.Contains(t, m, "email")
	assert.Equal(t, []string{"failed on the 'email' rule"}, m["email"])

	require.Contains(t, m, "password")
	assert.Equal(t, []string{"failed on the 'min' rule (8)"}, m["password"])

	require.Contains(t, m, "role")
	assert.Equal(t, []string{"failed on the 'oneof' rule (STUDENT FACULTY)"}, m["role"])
}

func TestValidationMapNonValidatorErrorLandsUnderBody(t *testing.T) {
	m := ValidationMap(errors.New("unexpected end of JSON input"))
	assert.Equal(t, map[string][]string{"body": {"unexpected end of JSON input"}}, m)
}

func TestJsonValidationErrorShape(t *testing.T) {
	app := fiber.New()
	app.Post("/signup", func(c *fiber.Ctx) error {
		var req signupForm
		if err := c.BodyParser(&req); err != nil {
			return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validator.New().Struct(req); err != nil {
			return JsonValidationError(c, ValidationMap(err))
		}
		return JsonOK(c, "ok", nil)
	})

	req := httptest.NewRequest("POST", "/signup",
		strings.NewReader(`{"email":"bad","password":"short"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.ErrorCode)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
}
