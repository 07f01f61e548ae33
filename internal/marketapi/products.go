package marketapi

import (
	"errors"
	"net/http"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/greenstall/greenmarket/internal/domain"
	"github.com/greenstall/greenmarket/internal/webserver"
	"github.com/greenstall/greenmarket/pkg/common"
	"github.com/greenstall/greenmarket/pkg/metrics"
)

// productPayload carries the catalog wire fields. Contact and Location keep
// their legacy capitalized keys.
type productPayload struct {
	Name        string `json:"name" form:"name"`
	Quantity    string `json:"quantity" form:"quantity"`
	Price       string `json:"price" form:"price"`
	Image       string `json:"image" form:"image"`
	Description string `json:"description" form:"description"`
	Email       string `json:"email" form:"email"`
	Upi         string `json:"upi" form:"upi"`
	Contact     string `json:"Contact" form:"Contact"`
	Location    string `json:"Location" form:"Location"`
}

// registerProductRoutes registers the catalog CRUD endpoints. The legacy
// client fetches from both /products and /api/products.
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/api/products", listProducts)
	webserver.ApiPOST("/api/products", createProduct)
	webserver.ApiPUT("/api/products/:id", updateProduct)
	webserver.ApiDELETE("/api/products/:id", deleteProduct)
	webserver.ApiGET("/api/products/export", exportProducts)
}

// listProducts returns every stored product as a bare JSON array in
// insertion order. Ids are assigned in increasing order, so ordering by id
// reproduces the storage's natural order. No filtering, no pagination.
func listProducts(c echo.Context) error {
	var rows []domain.Product
	if err := GetDB(c).Order("id").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch products"})
	}
	if rows == nil {
		rows = []domain.Product{}
	}
	return c.JSON(http.StatusOK, rows)
}

// createProduct stores a new product and returns it with the assigned id.
// The server deliberately performs no required-field validation: that check
// lives in the client form, and the stored record mirrors whatever subset of
// fields arrived. A known data-integrity gap, kept for contract fidelity.
func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add product"})
	}
	p := domain.Product{
		ID:          common.UUID(),
		Name:        payload.Name,
		Quantity:    payload.Quantity,
		Price:       payload.Price,
		Image:       payload.Image,
		Description: payload.Description,
		Email:       payload.Email,
		Upi:         payload.Upi,
		Contact:     payload.Contact,
		Location:    payload.Location,
	}
	if err := GetDB(c).Create(&p).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add product"})
	}
	metrics.Incr(metrics.MetricProductWrite)
	return c.JSON(http.StatusCreated, p)
}

// updateProduct merges a partial payload into the stored record. For every
// field: keep the incoming value when it is non-empty, otherwise retain the
// stored one. An update therefore cannot clear a populated field; that is
// the documented legacy policy, preserved on purpose.
//
// There is no lock around the read-modify-write: two concurrent updates to
// the same id are last-writer-wins.
func updateProduct(c echo.Context) error {
	id := c.Param("id")
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
	} else if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unable to parse product"})
	}

	p.Name = common.IfEmptyStr(payload.Name, p.Name)
	p.Quantity = common.IfEmptyStr(payload.Quantity, p.Quantity)
	p.Price = common.IfEmptyStr(payload.Price, p.Price)
	p.Image = common.IfEmptyStr(payload.Image, p.Image)
	p.Description = common.IfEmptyStr(payload.Description, p.Description)
	p.Email = common.IfEmptyStr(payload.Email, p.Email)
	p.Upi = common.IfEmptyStr(payload.Upi, p.Upi)
	p.Contact = common.IfEmptyStr(payload.Contact, p.Contact)
	p.Location = common.IfEmptyStr(payload.Location, p.Location)

	if err := GetDB(c).Save(&p).Error; err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	metrics.Incr(metrics.MetricProductWrite)
	return c.JSON(http.StatusOK, p)
}

// deleteProduct removes a product by id. Status bodies are plain text to
// match the legacy contract.
func deleteProduct(c echo.Context) error {
	id := c.Param("id")
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return c.String(http.StatusNotFound, "Product not found")
	} else if err != nil {
		return c.String(http.StatusInternalServerError, "Server error")
	}
	if err := GetDB(c).Delete(&p).Error; err != nil {
		return c.String(http.StatusInternalServerError, "Server error")
	}
	metrics.Incr(metrics.MetricProductWrite)
	return c.String(http.StatusOK, "Product deleted successfully")
}

// exportProducts streams the catalog as a CSV download.
func exportProducts(c echo.Context) error {
	var rows []domain.Product
	if err := GetDB(c).Order("id").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch products"})
	}
	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to export products"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}
