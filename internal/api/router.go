package api

import (
	"lottery-backend/config"
	"lottery-backend/internal/api/v1/auth"
	"lottery-backend/internal/api/v1/promotion"
	"lottery-backend/internal/api/v1/ticket"
	userRoutes "lottery-backend/internal/api/v1/user"
	"lottery-backend/internal/middleware"
	"lottery-backend/internal/services"
	"lottery-backend/internal/storage"
	"lottery-backend/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Dependencies are the process-wide collaborators the handlers are built from.
// Redis may be nil.
type Dependencies struct {
	Config *config.Config
	Store  storage.Storage
	Redis  *redis.Client
}

func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	tokens := utils.NewTokenManager(cfg.JWTSecret)
	denylist := services.NewTokenDenylist(deps.Redis)
	users := services.NewUserCache(deps.Store, deps.Redis)
	authMiddleware := middleware.AuthMiddleware(tokens, denylist, users)

	router := gin.New()
	router.Use(middleware.Logger(), middleware.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	api := router.Group("/api")
	{
		promotion.RegisterRoutes(api, promotion.NewHandler(deps.Store))
		ticket.RegisterRoutes(api, ticket.NewHandler(deps.Store, services.NewTicketScanner(deps.Store)))
		auth.RegisterRoutes(api, auth.NewHandler(
			services.NewAuthService(deps.Store, tokens),
			tokens,
			denylist,
			services.NewVerificationService(deps.Redis),
		), authMiddleware)
		userRoutes.RegisterRoutes(api, authMiddleware)
	}

	return router
}
