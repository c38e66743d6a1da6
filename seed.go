package main

import (
	"context"

	"platzistore/internal/models"
	"platzistore/internal/repositories"

	"go.uber.org/zap"
)

var mockProducts = []models.Product{
	{Image: "https://arepa.s3.amazonaws.com/camiseta.png", Title: "Camiseta", Price: 25, Description: "bla bla bla bla bla"},
	{Image: "https://arepa.s3.amazonaws.com/mug.png", Title: "Mug", Price: 10, Description: "bla bla bla bla bla"},
	{Image: "https://arepa.s3.amazonaws.com/pin.png", Title: "Pin", Price: 4, Description: "bla bla bla bla bla"},
	{Image: "https://arepa.s3.amazonaws.com/stickers1.png", Title: "Stickers", Price: 2, Description: "bla bla bla bla bla"},
	{Image: "https://arepa.s3.amazonaws.com/stickers2.png", Title: "Stickers", Price: 3, Description: "bla bla bla bla bla"},
	{Image: "https://arepa.s3.amazonaws.com/hoodie.png", Title: "Hoodie", Price: 35, Description: "bla bla bla bla bla"},
}

// seedProducts populates the product repository with the mock catalogue.
func seedProducts(ctx context.Context, repo repositories.ProductRepository, logger *zap.Logger) int {
	seeded := 0
	for _, p := range mockProducts {
		product := p
		if err := repo.Create(ctx, &product); err != nil {
			logger.Warn("failed to seed product", zap.String("title", product.Title), zap.Error(err))
			continue
		}
		logger.Debug("seeded product", zap.String("id", product.ID), zap.String("title", product.Title))
		seeded++
	}
	return seeded
}
