package app

import (
	"context"

	"github.com/talkincode/catalog/internal/domain"
	"go.uber.org/zap"
)

var demoProducts = []domain.Product{
	{ID: 1, Name: "Bala", PriceCents: 50},
	{ID: 2, Name: "Papel", PriceCents: 230},
	{ID: 3, Name: "Caneta", PriceCents: 500},
	{ID: 4, Name: "Monitor", PriceCents: 351099},
}

// checkProducts initializes demo products on an empty catalog
func (a *Application) checkProducts(ctx context.Context) error {
	count, err := a.products.Count(ctx)
	if err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return err
	}
	if count > 0 {
		zap.L().Info("catalog not empty, skipping demo products", zap.Int64("count", count))
		return nil
	}

	for _, p := range demoProducts {
		p := p
		if err := a.products.Create(ctx, &p); err != nil {
			zap.L().Error("failed to create demo product", zap.String("name", p.Name), zap.Error(err))
			return err
		}
		zap.L().Info("initialized demo product", zap.String("name", p.Name))
	}
	return nil
}
