package catalog

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"

	"github.com/greenstall/greenmarket/internal/domain"
)

// ProductPatch is a partial product update. Empty fields mean "no change":
// the server keeps the stored value for every field that arrives empty, so a
// populated field cannot be cleared through an update. That merge-on-truthy
// policy is the documented legacy contract, not an accident.
type ProductPatch struct {
	Name        string `json:"name,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	Price       string `json:"price,omitempty"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	Upi         string `json:"upi,omitempty"`
	Contact     string `json:"Contact,omitempty"`
	Location    string `json:"Location,omitempty"`
}

// Client talks to the catalog HTTP API. Requests are plain request/response,
// one at a time; there is no retry policy at this layer.
type Client struct {
	baseURL string
	timeout time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: 10 * time.Second,
	}
}

// ListProducts fetches the full catalog. A response that is not a JSON array
// of products is reported as an error, never a crash.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var (
		code     int
		products []domain.Product
	)
	err := gout.GET(c.baseURL + "/api/products").
		WithContext(ctx).
		SetTimeout(c.timeout).
		Code(&code).
		BindJSON(&products).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "fetch products")
	}
	if code != http.StatusOK {
		return nil, errors.Errorf("fetch products: unexpected status %d", code)
	}
	return products, nil
}

// CreateProduct submits a full product draft and returns the stored record
// with its server-assigned id.
func (c *Client) CreateProduct(ctx context.Context, draft domain.Product) (domain.Product, error) {
	var (
		code    int
		created domain.Product
	)
	err := gout.POST(c.baseURL + "/api/products").
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(draft).
		Code(&code).
		BindJSON(&created).
		Do()
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "add product")
	}
	if code != http.StatusCreated {
		return domain.Product{}, errors.Errorf("add product: unexpected status %d", code)
	}
	return created, nil
}

// UpdateProduct applies a partial patch and returns the merged record.
func (c *Client) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (domain.Product, error) {
	var (
		code    int
		updated domain.Product
	)
	err := gout.PUT(c.baseURL + "/api/products/" + id).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(patch).
		Code(&code).
		BindJSON(&updated).
		Do()
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "update product")
	}
	switch code {
	case http.StatusOK:
		return updated, nil
	case http.StatusNotFound:
		return domain.Product{}, ErrNotFound
	default:
		return domain.Product{}, errors.Errorf("update product: unexpected status %d", code)
	}
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	var code int
	err := gout.DELETE(c.baseURL + "/api/products/" + id).
		WithContext(ctx).
		SetTimeout(c.timeout).
		Code(&code).
		Do()
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return errors.Errorf("delete product: unexpected status %d", code)
	}
}

// Login checks customer credentials against /login.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.login(ctx, "/login", email, password)
}

// FarmerLogin checks farmer credentials against /flogin.
func (c *Client) FarmerLogin(ctx context.Context, email, password string) error {
	return c.login(ctx, "/flogin", email, password)
}

func (c *Client) login(ctx context.Context, path, email, password string) error {
	var code int
	err := gout.POST(c.baseURL + path).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(gout.H{"email": email, "password": password}).
		Code(&code).
		Do()
	if err != nil {
		return errors.Wrap(err, "login")
	}
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrCredentials
	default:
		return errors.Errorf("login: unexpected status %d", code)
	}
}
