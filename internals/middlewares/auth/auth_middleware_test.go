// file: internals/middlewares/auth/auth_middleware_test.go
package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
	authService "kampusku_backend/internals/features/users/auth/service"
	helper "kampusku_backend/internals/helpers"
)

func testApp(issuer *authService.TokenIssuer, isActive ActiveChecker) *fiber.App {
	app := fiber.New()
	app.Get("/private", AuthMiddleware(issuer, isActive), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(helper.LocRole).(string))
	})
	app.Get("/admin", AuthMiddleware(issuer, isActive), RequireAdmin("testing"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func issueFor(t *testing.T, issuer *authService.TokenIssuer, role constants.Role) string {
	t.Helper()
	pair, err := issuer.Issue(authService.TokenClaims{
		UserID: uuid.New(),
		Email:  "mw@campus.edu",
		Role:   role,
	})
	require.NoError(t, err)
	return pair.AccessToken
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	issuer := authService.NewTokenIssuer("a", "r", time.Hour, time.Hour)
	app := testApp(issuer, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	issuer := authService.NewTokenIssuer("a", "r", time.Hour, time.Hour)
	app := testApp(issuer, nil)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareSetsLocals(t *testing.T) {
	issuer := authService.NewTokenIssuer("a", "r", time.Hour, time.Hour)
	app := testApp(issuer, nil)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, issuer, constants.RoleFaculty))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareHonoursActiveChecker(t *testing.T) {
	issuer := authService.NewTokenIssuer("a", "r", time.Hour, time.Hour)
	deactivated := func(c *fiber.Ctx, userID uuid.UUID) error {
		return fiber.NewError(fiber.StatusForbidden, "Account deactivated")
	}
	app := testApp(issuer, deactivated)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, issuer, constants.RoleStudent))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminGate(t *testing.T) {
	issuer := authService.NewTokenIssuer("a", "r", time.Hour, time.Hour)
	app := testApp(issuer, nil)

	cases := []struct {
		role constants.Role
		want int
	}{
		{constants.RoleAdmin, fiber.StatusOK},
		{constants.RoleSuperAdmin, fiber.StatusOK},
		{constants.RoleFaculty, fiber.StatusForbidden},
		{constants.RoleStudent, fiber.StatusForbidden},
		{constants.RoleStaff, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueFor(t, issuer, tc.role))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "role=%s", tc.role)
	}
}
