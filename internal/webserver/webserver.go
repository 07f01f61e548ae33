package webserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/greenstall/greenmarket/config"
	"github.com/greenstall/greenmarket/pkg/metrics"
)

// ContextDBKey is the echo context key carrying the request DB handle.
const ContextDBKey = "greenmarket.db"

// AppContext is the slice of the application the web layer depends on.
type AppContext interface {
	DB() *gorm.DB
	Config() *config.AppConfig
}

type WebServer struct {
	appctx AppContext
	root   *echo.Echo
}

var server *WebServer

// Init builds the singleton web server: recover + CORS middleware, jsoniter
// body codec, per-request DB injection, zap request logging and traffic
// counters. Route files register themselves through ApiGET and friends.
func Init(appctx AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = NewJsonSerializer()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(injectDB(appctx))
	e.Use(requestLogger())
	server = &WebServer{appctx: appctx, root: e}
	return server
}

// Instance returns the singleton, for tests that drive handlers directly.
func Instance() *WebServer {
	return server
}

func (s *WebServer) Root() *echo.Echo {
	return s.root
}

// Start listens on the configured address until the server is shut down.
func (s *WebServer) Start() error {
	cfg := s.appctx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("webserver listening on %s", addr)
	return s.root.Start(addr)
}

func injectDB(appctx AppContext) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextDBKey, appctx.DB())
			return next(c)
		}
	}
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
				metrics.Incr(metrics.MetricApiError)
			}
			metrics.Incr(metrics.MetricApiRequest)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)))
			return err
		}
	}
}

// ApiGET registers a GET route on the singleton server.
func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

// ApiPOST registers a POST route on the singleton server.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

// ApiPUT registers a PUT route on the singleton server.
func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT(path, h)
}

// ApiDELETE registers a DELETE route on the singleton server.
func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE(path, h)
}
