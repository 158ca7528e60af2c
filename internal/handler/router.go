package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/handler/api"
	"volunteer-hub/internal/handler/middleware"
	"volunteer-hub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	opportunityHandler *api.OpportunityHandler,
	applicationHandler *api.ApplicationHandler,
	rewardHandler *api.RewardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, opportunityHandler, applicationHandler, rewardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	opportunityHandler *api.OpportunityHandler,
	applicationHandler *api.ApplicationHandler,
	rewardHandler *api.RewardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me/balance", Handler: authHandler.Balance},
				{Method: http.MethodGet, Path: "/me/opportunities", Handler: opportunityHandler.ListMine,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePromoter)}},
			})
		}

		opportunities := apiGroup.Group("/opportunities")
		{
			addRoutes(opportunities, []route{
				{Method: http.MethodGet, Path: "", Handler: opportunityHandler.List},
			})

			authed := opportunities.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: opportunityHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: opportunityHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePromoter)}},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: opportunityHandler.Publish,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePromoter)}},
				{Method: http.MethodPatch, Path: "/:id", Handler: opportunityHandler.Update,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePromoter)}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: opportunityHandler.Cancel,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePromoter)}},
				{Method: http.MethodPost, Path: "/:id/applications", Handler: applicationHandler.Apply,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleVolunteer)}},
				{Method: http.MethodGet, Path: "/:id/applications", Handler: applicationHandler.ListForOpportunity,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePromoter)}},
			})
		}

		applications := apiGroup.Group("/applications")
		applications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(applications, []route{
				{Method: http.MethodGet, Path: "", Handler: applicationHandler.ListMine},
				{Method: http.MethodPost, Path: "/:id/decision", Handler: applicationHandler.Decide,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePromoter)}},
				{Method: http.MethodPost, Path: "/:id/withdraw", Handler: applicationHandler.Withdraw},
			})
		}

		rewards := apiGroup.Group("/rewards")
		{
			addRoutes(rewards, []route{
				{Method: http.MethodGet, Path: "", Handler: rewardHandler.List},
			})

			authed := rewards.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "/:id/redeem", Handler: rewardHandler.Redeem},
			})
		}

		redemptions := apiGroup.Group("/redemptions")
		redemptions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(redemptions, []route{
				{Method: http.MethodGet, Path: "", Handler: rewardHandler.ListRedemptions},
				{Method: http.MethodPost, Path: "/:code/use", Handler: rewardHandler.MarkUsed,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePromoter)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
