package catalogapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/catalog/config"
	"github.com/talkincode/catalog/internal/app"
	"github.com/talkincode/catalog/internal/domain"
	"github.com/talkincode/catalog/internal/repository"
	"github.com/talkincode/catalog/internal/webserver"
)

// 2000-01-04 is a Tuesday.
func frozenTuesday() time.Time {
	return time.Date(2000, time.January, 4, 10, 0, 0, 0, time.UTC)
}

// newTestApp builds an application on a temporary database file. The file
// lives under t.TempDir, which is removed on every exit path.
func newTestApp(t *testing.T) *app.Application {
	t.Helper()
	cfg := *config.DefaultAppConfig
	cfg.System.Testing = true
	cfg.Database.Name = filepath.Join(t.TempDir(), "app.db")

	application := app.NewApplication(&cfg)
	require.NoError(t, application.Init())
	t.Cleanup(application.Release)
	return application
}

func newTestServer(t *testing.T, repo repository.ProductRepository) *webserver.Server {
	t.Helper()
	cfg := *config.DefaultAppConfig
	cfg.System.Testing = true
	srv := webserver.NewServer(&cfg)
	Register(srv, repo, frozenTuesday)
	return srv
}

func get(srv *webserver.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := get(srv, "/ping")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestListProducts(t *testing.T) {
	application := newTestApp(t)
	require.NoError(t, application.DB().Exec(
		`insert into produtos (id, nome, valor_em_centavos) values (1, 'Papel', 230)`).Error)
	srv := newTestServer(t, application.Products())

	rec := get(srv, "/produtos")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id": 1, "nome": "Papel", "valor": 2.3, "desconto": 0.115}]`, rec.Body.String())
}

func TestListProductsEmpty(t *testing.T) {
	application := newTestApp(t)
	srv := newTestServer(t, application.Products())

	rec := get(srv, "/produtos")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListProductsOrderedByName(t *testing.T) {
	application := newTestApp(t)
	ctx := context.Background()
	for _, p := range []domain.Product{
		{ID: 1, Name: "Papel", PriceCents: 230},
		{ID: 2, Name: "Caneta", PriceCents: 500},
		{ID: 3, Name: "Bala", PriceCents: 50},
	} {
		p := p
		require.NoError(t, application.Products().Create(ctx, &p))
	}
	srv := newTestServer(t, application.Products())

	rec := get(srv, "/produtos")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id": 3, "nome": "Bala", "valor": 0.5, "desconto": 0.025},
		{"id": 2, "nome": "Caneta", "valor": 5, "desconto": 0.75},
		{"id": 1, "nome": "Papel", "valor": 2.3, "desconto": 0.115}
	]`, rec.Body.String())
}

type failingRepository struct{}

func (failingRepository) ListByName(context.Context) ([]domain.Product, error) {
	return nil, errors.New("disk I/O error")
}

func (failingRepository) Count(context.Context) (int64, error) { return 0, nil }

func (failingRepository) Create(context.Context, *domain.Product) error { return nil }

func TestListProductsStorageFailure(t *testing.T) {
	srv := newTestServer(t, failingRepository{})

	rec := get(srv, "/produtos")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewProductViewUsesReferenceDate(t *testing.T) {
	monday := time.Date(2000, time.January, 3, 10, 0, 0, 0, time.UTC)
	p := domain.Product{ID: 7, Name: "Monitor", PriceCents: 351099}

	view := newProductView(p, monday)

	assert.Equal(t, ProductView{ID: 7, Nome: "Monitor", Valor: 3510.99, Desconto: 351.099}, view)
}
