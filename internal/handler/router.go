package handler

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"elite-drive/internal/handler/api"
	"elite-drive/internal/handler/middleware"
	"elite-drive/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Car      *api.CarHandler
	Schedule *api.ScheduleHandler
	Customer *api.CustomerHandler
	Booking  *api.BookingHandler
	Service  *api.ServiceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupValidator()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

// setupValidator makes binding errors name fields by their JSON keys.
func setupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	root := engine.Group("")
	addRoutes(root.Group("/cars"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Car.List},
		{Method: http.MethodGet, Path: "/brand/:brand", Handler: h.Car.ListByBrand},
		{Method: http.MethodGet, Path: "/availability", Handler: h.Car.ListWithAvailability},
	})
	addRoutes(root.Group("/schedules"), []route{
		{Method: http.MethodGet, Path: "/car/:carId", Handler: h.Schedule.ListAvailableForCar},
	})
	addRoutes(root.Group("/customers"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
		{Method: http.MethodGet, Path: "/:id/history", Handler: h.Customer.History},
	})
	addRoutes(root, []route{
		{Method: http.MethodPost, Path: "/book-test-drive", Handler: h.Booking.BookTestDrive},
		{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListAll},
		{Method: http.MethodGet, Path: "/services/due", Handler: h.Service.ListDue},
	})
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
