package marketapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/greenstall/greenmarket/config"
	"github.com/greenstall/greenmarket/internal/domain"
	"github.com/greenstall/greenmarket/internal/imagestore"
	"github.com/greenstall/greenmarket/internal/webserver"
)

type testAppCtx struct {
	db  *gorm.DB
	cfg *config.AppConfig
}

func (t *testAppCtx) DB() *gorm.DB              { return t.db }

func (t *testAppCtx) Config() *config.AppConfig { return t.cfg }

type testServer struct {
	srv     *httptest.Server
	db      *gorm.DB
	uploads string
}

// newTestServer spins the full route table on an in-memory sqlite database.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))

	cfg := *config.DefaultAppConfig
	cfg.System.Workdir = t.TempDir()

	uploads := filepath.Join(cfg.System.Workdir, "uploads")
	ws := webserver.Init(&testAppCtx{db: db, cfg: &cfg})
	InitRouter(imagestore.New(uploads))

	srv := httptest.NewServer(ws.Root())
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, db: db, uploads: uploads}
}

func (ts *testServer) request(t *testing.T, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := jsoniter.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func (ts *testServer) listProducts(t *testing.T) []domain.Product {
	t.Helper()
	code, body := ts.request(t, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, code)
	var products []domain.Product
	require.NoError(t, jsoniter.Unmarshal(body, &products))
	return products
}
