// main.go - ProjectFlow API server
package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"projectflow/database"
	"projectflow/handlers"
	"projectflow/middleware"
	"projectflow/services"
	"projectflow/store"
	"projectflow/store/memory"
	"projectflow/store/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	backend := newBackend()
	analytics := services.NewAnalyticsService(backend)
	h := handlers.New(backend, analytics)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-User-ID",
	}))

	app.Use(middleware.RateLimit())
	app.Use(middleware.CurrentUser(getEnv("DEFAULT_USER_ID", memory.DemoUserID)))

	api := app.Group("/api")

	api.Get("/projects", h.ListProjects)
	api.Post("/projects", h.CreateProject)
	api.Get("/projects/:id", h.GetProject)
	api.Put("/projects/:id", h.UpdateProject)
	api.Delete("/projects/:id", h.DeleteProject)
	api.Get("/projects/:id/messages", h.ListProjectMessages)
	api.Post("/projects/:id/messages", h.PostProjectMessage)

	api.Get("/tasks", h.ListTasks)
	api.Post("/tasks", h.CreateTask)
	api.Get("/tasks/:id", h.GetTask)
	api.Put("/tasks/:id", h.UpdateTask)
	api.Delete("/tasks/:id", h.DeleteTask)

	api.Get("/teams", h.ListTeams)
	api.Post("/teams", h.CreateTeam)
	api.Get("/teams/:id", h.GetTeam)
	api.Put("/teams/:id", h.UpdateTeam)
	api.Delete("/teams/:id", h.DeleteTeam)

	api.Get("/users", h.ListUsers)
	api.Get("/users/me", h.GetCurrentUser)
	api.Get("/users/:id", h.GetUser)

	api.Get("/time-entries", h.ListTimeEntries)
	api.Post("/time-entries", h.CreateTimeEntry)
	api.Delete("/time-entries/:id", h.DeleteTimeEntry)

	api.Get("/analytics", h.GetProjectStats)
	api.Get("/analytics/time", h.GetTimeSummary)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	port := getEnv("PORT", "3000")
	log.Printf("ProjectFlow API starting on port %s (backend: %s)", port, getEnv("STORE_BACKEND", "memory"))
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// newBackend selects the data store. STORE_BACKEND=memory runs fully
// self-contained with seeded demo data and simulated latency; postgres
// connects to the configured database and migrates it.
func newBackend() store.Store {
	switch getEnv("STORE_BACKEND", "memory") {
	case "postgres":
		db, err := database.Open()
		if err != nil {
			log.Fatalf("Failed to initialize postgres backend: %v", err)
		}
		log.Println("PostgreSQL backend connected")
		return postgres.New(db)
	case "memory":
		latency := time.Duration(getEnvInt("MOCK_LATENCY_MS", 300)) * time.Millisecond
		return memory.New(memory.Config{Latency: latency, Seed: true})
	default:
		log.Fatalf("Unknown STORE_BACKEND %q (want memory or postgres)", os.Getenv("STORE_BACKEND"))
		return nil
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
