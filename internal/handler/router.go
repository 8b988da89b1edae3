package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"hotel-admin/internal/handler/api"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine                *gin.Engine
	Config                config.Config
	Metrics               *metrics.Registry
	Logger                *middleware.Logger
	AuthMiddleware        *middleware.AuthMiddleware
	LoginLimiter          *middleware.LoginRateLimiter
	AuthHandler           *api.AuthHandler
	UserHandler           *api.UserHandler
	HotelHandler          *api.HotelHandler
	RoomTypeHandler       *api.RoomTypeHandler
	RateAdjustmentHandler *api.RateAdjustmentHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reg *metrics.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(reg))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group("/auth"), []route{
		{Method: http.MethodPost, Path: "/token", Handler: p.AuthHandler.Login, Mw: []gin.HandlerFunc{p.LoginLimiter.Middleware()}},
	})

	authRequired := engine.Group("")
	authRequired.Use(p.AuthMiddleware.RequireAuth())

	users := authRequired.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			{Method: http.MethodPost, Path: "", Handler: p.UserHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: p.UserHandler.List},
			{Method: http.MethodGet, Path: "/:user_id", Handler: p.UserHandler.Get},
			{Method: http.MethodPut, Path: "/:user_id", Handler: p.UserHandler.Update},
			{Method: http.MethodDelete, Path: "/:user_id", Handler: p.UserHandler.Delete},
		})
	}

	hotels := authRequired.Group("/hotels")
	{
		addRoutes(hotels, []route{
			{Method: http.MethodPost, Path: "", Handler: p.HotelHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: p.HotelHandler.List},
			{Method: http.MethodGet, Path: "/:hotel_id", Handler: p.HotelHandler.Get},
			{Method: http.MethodPut, Path: "/:hotel_id", Handler: p.HotelHandler.Update},
			{Method: http.MethodDelete, Path: "/:hotel_id", Handler: p.HotelHandler.Delete},
			{Method: http.MethodGet, Path: "/:hotel_id/room-types", Handler: p.HotelHandler.ListRoomTypes},
		})
	}

	roomTypes := authRequired.Group("/room-types")
	{
		addRoutes(roomTypes, []route{
			{Method: http.MethodPost, Path: "", Handler: p.RoomTypeHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: p.RoomTypeHandler.List},
			{Method: http.MethodGet, Path: "/:room_type_id", Handler: p.RoomTypeHandler.Get},
			{Method: http.MethodPut, Path: "/:room_type_id", Handler: p.RoomTypeHandler.Update},
			{Method: http.MethodDelete, Path: "/:room_type_id", Handler: p.RoomTypeHandler.Delete},
			{Method: http.MethodGet, Path: "/:room_type_id/rate-adjustments", Handler: p.RoomTypeHandler.ListRateAdjustments},
			{Method: http.MethodGet, Path: "/:room_type_id/effective-rate", Handler: p.RoomTypeHandler.EffectiveRate},
		})
	}

	adjustments := authRequired.Group("/rate-adjustments")
	{
		addRoutes(adjustments, []route{
			{Method: http.MethodPost, Path: "", Handler: p.RateAdjustmentHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: p.RateAdjustmentHandler.List},
			{Method: http.MethodGet, Path: "/:adjustment_id", Handler: p.RateAdjustmentHandler.Get},
			{Method: http.MethodPut, Path: "/:adjustment_id", Handler: p.RateAdjustmentHandler.Update},
			{Method: http.MethodDelete, Path: "/:adjustment_id", Handler: p.RateAdjustmentHandler.Delete},
		})
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
