package routes

import (
	"time"

	"github.com/6ixminds/labs_backend/auth"
	"github.com/6ixminds/labs_backend/dto"
	"github.com/6ixminds/labs_backend/handlers"
	"github.com/6ixminds/labs_backend/middleware"
	"github.com/6ixminds/labs_backend/models"
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything the API routes are wired to.
type Handlers struct {
	Certificates *handlers.CertificateHandler
	Internships  *handlers.ContentHandler[models.Internship, dto.InternshipRequest, dto.InternshipResponse]
	Projects     *handlers.ContentHandler[models.Project, dto.ProjectRequest, dto.ProjectResponse]
	Team         *handlers.ContentHandler[models.TeamMember, dto.TeamMemberRequest, dto.TeamMemberResponse]
	Showcase     *handlers.ContentHandler[models.ShowcaseItem, dto.ShowcaseRequest, dto.ShowcaseResponse]
	Messages     *handlers.MessageHandler
	Auth         *handlers.AuthHandler
	AdminSocket  *handlers.AdminSocketHandler
}

type Options struct {
	Tokens   *auth.TokenIssuer
	Dev      *auth.DevProvider
	RedisURL string
}

// Setup registers every /api route on app.
func Setup(app *fiber.App, h Handlers, opts Options) {
	api := app.Group("/api")

	protected := middleware.Protected(opts.Tokens, opts.Dev)
	staff := []fiber.Handler{protected, middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin)}
	superAdmin := []fiber.Handler{protected, middleware.RequireRoles(models.RoleSuperAdmin)}

	CertificateRoutes(api, h.Certificates, staff, middleware.RateLimiter("verify", opts.RedisURL, 30, time.Minute))
	ContentRoutes(api.Group("/internships"), h.Internships, staff)
	ContentRoutes(api.Group("/projects"), h.Projects, staff)
	ContentRoutes(api.Group("/team"), h.Team, staff)
	ContentRoutes(api.Group("/showcase"), h.Showcase, staff)
	MessageRoutes(api, h.Messages, staff, middleware.RateLimiter("contact", opts.RedisURL, 5, time.Minute))
	AuthRoutes(api, h.Auth, protected, superAdmin, middleware.RateLimiter("login", opts.RedisURL, 10, time.Minute))

	if h.AdminSocket != nil {
		api.Get("/ws/admin", h.AdminSocket.Upgrade, h.AdminSocket.Serve())
	}
}

func with(chain []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}
