package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/Alturino/storefront/catalog/internal/catalog"
)

var errSourceDown = errors.New("source down")

type stubSource struct {
	products []catalog.Product
	err      error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(context.Context) ([]catalog.Product, error) {
	return s.products, s.err
}

func fixtureProducts() []catalog.Product {
	return []catalog.Product{
		{ProductID: "hydra-serum", Name: "Hydra Serum", Description: "Nem veren serum.", Size: "30 ml", Price: "450"},
		{ProductID: "glow-serum", Name: "Glow Serum", Description: "Aydınlatıcı bakım.", Size: "30 ml"},
		{ProductID: "clay-mask", Name: "Clay Mask", Description: "Arındırıcı kil maskesi.", Size: "75 ml"},
	}
}

func newTestService(t *testing.T, src *stubSource, cache *redis.Client) *CatalogService {
	t.Helper()
	return NewCatalogService(src, "", cache, prometheus.NewRegistry())
}
