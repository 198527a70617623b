package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Responder  *handlers.Responder
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Customer   *handlers.CustomerHandler
	Employee   *handlers.EmployeeHandler
	Job        *handlers.JobHandler
	Assignment *handlers.AssignmentHandler
}

func Setup(app *fiber.App, cfg *config.Config, m *metrics.Metrics, h Handlers) {
	app.Get("/metrics", m.Handler())

	api := app.Group("/api/v1")

	// General API rate limiter: 120 req/min per IP
	api.Use(rateLimit(120, h.Responder))

	api.Get("/health", h.Health.Check)

	// Auth: stricter limit, 10 req/min per IP
	auth := api.Group("/customer/auth", rateLimit(10, h.Responder))
	auth.Post("/signup", h.Auth.Signup)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/forget-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Post("/logout", middleware.JWTProtected(cfg), h.Auth.Logout)
	auth.Get("/me", middleware.JWTProtected(cfg), h.Auth.Me)

	customer := api.Group("/customer")
	customer.Post("/", h.Customer.Create)
	customer.Get("/", h.Customer.List)
	customer.Get("/:id", h.Customer.Get)
	customer.Put("/:id", h.Customer.Update)
	customer.Delete("/:id", h.Customer.Delete)

	employee := api.Group("/employee")
	employee.Post("/", h.Employee.Create)
	employee.Get("/", h.Employee.List)
	employee.Get("/:id", h.Employee.Get)
	employee.Put("/:id", h.Employee.Update)
	employee.Delete("/:id", h.Employee.Delete)

	job := api.Group("/job")
	job.Post("/", h.Job.Create)
	job.Get("/", h.Job.List)
	job.Get("/:id", h.Job.Get)
	job.Put("/:id", h.Job.Update)
	job.Delete("/:id", h.Job.Delete)

	employeeJob := api.Group("/employee-job")
	employeeJob.Post("/", h.Assignment.AssignJob)
	employeeJob.Post("/assign-many", h.Assignment.AssignJobToMany)
	employeeJob.Delete("/:emp_id", h.Assignment.UnassignJob)

	customerEmployee := api.Group("/customer-employee")
	customerEmployee.Post("/", h.Assignment.AssignCustomer)
	customerEmployee.Get("/get-all", h.Assignment.ListCustomers)
	customerEmployee.Get("/:id", h.Assignment.GetCustomer)

	app.Use(h.Responder.RouteNotFound)
}

func rateLimit(perMinute int, r *handlers.Responder) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               perMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached:      r.TooManyRequests,
	})
}
