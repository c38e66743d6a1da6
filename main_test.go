package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"platzistore/internal/config"
	"platzistore/internal/models"
	"platzistore/internal/repositories"
	"platzistore/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, repositories.ProductRepository) {
	t.Helper()

	receipt := filepath.Join(t.TempDir(), "receipt.pdf")
	require.NoError(t, os.WriteFile(receipt, []byte("%PDF-1.4 receipt"), 0o600))

	productRepo := repositories.NewMockProductRepository()
	authService := services.NewAuthService(
		repositories.NewMockUserRepository(),
		repositories.NewStaticAPIKeyRepository("admin", "public"),
		"test_jwt_secret",
		time.Hour,
	)
	app := newApp(appDeps{
		APIPrefix:      "/api",
		ReceiptPath:    receipt,
		ProductService: services.NewProductService(productRepo, nil, zap.NewNop()),
		AuthService:    authService,
		Logger:         zap.NewNop(),
	})
	return app, productRepo
}

func get(t *testing.T, app *fiber.App, method, target string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(fiber.HeaderUserAgent, "platzi-test/1.0")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRootEchoesUserAgent(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := get(t, app, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "UserInfo: platzi-test/1.0", body)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "nosniff", resp.Header.Get(fiber.HeaderXContentTypeOptions))
}

func TestAPIRoutes(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := get(t, app, http.MethodGet, "/api")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "API v2", body)

	resp, body = get(t, app, http.MethodGet, "/api/receipts")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "%PDF-1.4 receipt", body)
}

func TestUnmatchedRoutesReturn404(t *testing.T) {
	app, _ := setupApp(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		for _, target := range []string{"/nope", "/api/nope", "/api/products/a/b"} {
			resp, body := get(t, app, method, target)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, method+" "+target)
			assert.Equal(t, "Error 404", body, method+" "+target)
		}
	}
}

func TestSeedProducts(t *testing.T) {
	app, repo := setupApp(t)

	n := seedProducts(context.Background(), repo, zap.NewNop())
	assert.Equal(t, len(mockProducts), n)

	resp, body := get(t, app, http.MethodGet, "/api/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	require.Len(t, envelope.Data, len(mockProducts))
	for _, p := range envelope.Data {
		assert.Len(t, p.ID, 24)
	}
	assert.Empty(t, mockProducts[0].ID, "seeding must not mutate the catalogue")
}

func TestOpenMemoryStores(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("STORE_DRIVER", config.DriverMemory)
	v.Set("JWT_SECRET", "secret")
	cfg, err := config.Load(v)
	require.NoError(t, err)

	st, err := openStores(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, st.products)
	assert.NotNil(t, st.users)
	assert.NoError(t, st.close())
}

func TestOpenSQLiteStores(t *testing.T) {
	cfg := config.Config{StoreDriver: config.DriverSQLite, DatabaseDSN: "file:" + t.Name() + "?mode=memory&cache=shared"}

	st, err := openStores(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, len(mockProducts), seedProducts(context.Background(), st.products, zap.NewNop()))
	assert.NoError(t, st.close())
}
