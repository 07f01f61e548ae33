package marketapi

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/greenstall/greenmarket/internal/imagestore"
	"github.com/greenstall/greenmarket/internal/webserver"
)

var images *imagestore.Store

// InitRouter wires all marketplace routes onto the web server. The image
// store receives farmer profile uploads.
func InitRouter(store *imagestore.Store) {
	images = store
	registerUserRoutes()
	registerProductRoutes()
}

// GetDB returns the request-scoped gorm handle injected by the webserver.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.ContextDBKey).(*gorm.DB)
}
