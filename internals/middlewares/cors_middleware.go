package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"kampusku_backend/internals/configs"
)

// CorsMiddleware builds the CORS layer. Origins come from CORS_ORIGINS
// (comma separated) with sensible local defaults for the dashboard dev
// server.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ORIGINS", strings.Join([]string{
		"http://localhost:5173",
		"http://localhost:3000",
	}, ","))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
