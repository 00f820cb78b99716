package bootstrap

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/msdharani1/portfolio-api/config"
	httpapi "github.com/msdharani1/portfolio-api/internal/api/http"
	"github.com/msdharani1/portfolio-api/internal/api/http/middleware"
	authhttp "github.com/msdharani1/portfolio-api/internal/auth/http"
	authmw "github.com/msdharani1/portfolio-api/internal/auth/middleware"
	authsvc "github.com/msdharani1/portfolio-api/internal/auth/service"
	contacthttp "github.com/msdharani1/portfolio-api/internal/contact/http"
	contactrepo "github.com/msdharani1/portfolio-api/internal/contact/repository"
	contactsvc "github.com/msdharani1/portfolio-api/internal/contact/service"
	projecthttp "github.com/msdharani1/portfolio-api/internal/projects/http"
	projectrepo "github.com/msdharani1/portfolio-api/internal/projects/repository"
	projectsvc "github.com/msdharani1/portfolio-api/internal/projects/service"
	sectionhttp "github.com/msdharani1/portfolio-api/internal/sections/http"
	settingshttp "github.com/msdharani1/portfolio-api/internal/settings/http"
	settingsrepo "github.com/msdharani1/portfolio-api/internal/settings/repository"
	settingssvc "github.com/msdharani1/portfolio-api/internal/settings/service"
)

type RouterDeps struct {
	Cfg      *config.Config
	Firebase *Firebase
	DB       *pgxpool.Pool // optional, contact archive
	Redis    *redis.Client
}

// Services groups the long-lived services the router and background jobs
// share.
type Services struct {
	Projects *projectsvc.ProjectService
	CV       *settingssvc.CVService
}

func BuildRouter(dep RouterDeps) (*gin.Engine, *Services) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler("portfolio-api", dep.Cfg.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	projectCache := projectrepo.NewSnapshotCache(dep.Redis)
	projectRepo := projectrepo.NewProjectRepository(dep.Firebase.DB)
	projectService := projectsvc.NewProjectService(projectRepo, projectCache)
	projectHandler := projecthttp.New(projectService, projectCache)

	settingsRepo := settingsrepo.NewSettingsRepository(dep.Firebase.DB)
	cvService := settingssvc.NewCVService(settingsRepo, dep.Cfg.CV.DefaultPath)
	settingsHandler := settingshttp.New(cvService)

	identity := authsvc.NewIdentityClient(dep.Cfg.Firebase.WebAPIKey)
	authHandler := authhttp.New(identity, dep.Firebase.Auth)

	var archive *contactrepo.ArchiveRepository
	if dep.DB != nil {
		archive = contactrepo.NewArchiveRepository(dep.DB)
	}
	relay := contactsvc.NewEmailJSClient(dep.Cfg.Mail.ServiceID, dep.Cfg.Mail.TemplateID, dep.Cfg.Mail.PublicKey)
	limiter := contactsvc.NewIPLimiter(dep.Cfg.Mail.RatePerMinute)
	contactHandler := contacthttp.New(relay, archive, limiter)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	sectionhttp.New().Register(api.Group("/sections"))
	projectHandler.RegisterPublic(api.Group("/projects"))
	settingsHandler.RegisterPublic(api.Group("/cv"))
	contactHandler.RegisterPublic(api.Group("/contact"))
	authHandler.Register(api.Group("/auth"))

	admin := api.Group("/admin")
	admin.Use(authmw.FirebaseAuthMiddleware(dep.Firebase.Auth))
	projectHandler.RegisterAdmin(admin.Group("/projects"))
	settingsHandler.RegisterAdmin(admin.Group("/settings"))
	contactHandler.RegisterAdmin(admin.Group("/contact"))

	// Unrecognized paths fall silently into the home view rather than a
	// not-found page. API misses still get a JSON 404.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
			return
		}
		if c.Request.URL.Path == "/" {
			c.JSON(http.StatusOK, gin.H{"ok": true, "service": "portfolio-api"})
			return
		}
		c.Redirect(http.StatusFound, "/")
	})

	return r, &Services{Projects: projectService, CV: cvService}
}
