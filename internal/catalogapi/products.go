package catalogapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/talkincode/catalog/internal/discount"
	"github.com/talkincode/catalog/internal/domain"
	"github.com/talkincode/catalog/internal/repository"
	"go.uber.org/zap"
)

// ProductView is the wire form of a product. Amounts are in major
// currency units.
type ProductView struct {
	ID       int64   `json:"id"`
	Nome     string  `json:"nome"`
	Valor    float64 `json:"valor"`
	Desconto float64 `json:"desconto"`
}

func newProductView(p domain.Product, today time.Time) ProductView {
	return ProductView{
		ID:       p.ID,
		Nome:     p.Name,
		Valor:    decimal.NewFromInt(p.PriceCents).Shift(-2).InexactFloat64(),
		Desconto: discount.Calculate(p.PriceCents, today).Shift(-2).InexactFloat64(),
	}
}

type productHandler struct {
	repo repository.ProductRepository
	now  func() time.Time
}

func (h *productHandler) listProducts(c echo.Context) error {
	products, err := h.repo.ListByName(c.Request().Context())
	if err != nil {
		zap.L().Error("failed to list products", zap.String("namespace", "catalog"), zap.Error(err))
		return err
	}

	today := h.now()
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p, today))
	}
	return c.JSON(http.StatusOK, views)
}
