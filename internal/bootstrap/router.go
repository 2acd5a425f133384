package bootstrap

import (
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/devfolio/portfolio-backend/internal/api/http"
	apimiddleware "github.com/devfolio/portfolio-backend/internal/api/http/middleware"
	"github.com/devfolio/portfolio-backend/internal/auth"
	authhttp "github.com/devfolio/portfolio-backend/internal/auth/http"
	authmiddleware "github.com/devfolio/portfolio-backend/internal/auth/middleware"
	authrepo "github.com/devfolio/portfolio-backend/internal/auth/repository"
	authservice "github.com/devfolio/portfolio-backend/internal/auth/service"
	contacthttp "github.com/devfolio/portfolio-backend/internal/contact/http"
	"github.com/devfolio/portfolio-backend/internal/projects/cache"
	projecthttp "github.com/devfolio/portfolio-backend/internal/projects/http"
	projectrepo "github.com/devfolio/portfolio-backend/internal/projects/repository"
	projectservice "github.com/devfolio/portfolio-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	AuthClient  *firebaseauth.Client
	Mailer      contacthttp.Sender
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(apimiddleware.RequestIDMiddleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.CORSOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	userRepo := authrepo.NewUserRepository(dep.DB)
	projectRepo := projectrepo.NewProjectRepository(dep.DB)
	listing := cache.NewListingCache(dep.Redis)
	projectSvc := projectservice.NewProjectService(projectRepo, listing)
	projectHandler := projecthttp.New(projectSvc)

	// Public surface: portfolio listing and contact form, no auth.
	projectHandler.RegisterPublic(api.Group("/projects"))
	contacthttp.New(dep.Mailer).Register(api.Group("/contact"))

	// Authenticated surface: session bootstrap and profile.
	authGroup := api.Group("/auth")
	authGroup.Use(authmiddleware.FirebaseAuthMiddleware(dep.AuthClient))
	authGroup.Use(auth.WithUser(userRepo))
	authhttp.New(authservice.NewAuthService(userRepo)).Register(authGroup)

	// Admin surface: project mutations, gated on the admin role.
	adminProjects := api.Group("/admin/projects")
	adminProjects.Use(authmiddleware.FirebaseAuthMiddleware(dep.AuthClient))
	adminProjects.Use(auth.WithUser(userRepo))
	adminProjects.Use(auth.AdminOnly())
	projectHandler.RegisterAdmin(adminProjects)

	return r
}
