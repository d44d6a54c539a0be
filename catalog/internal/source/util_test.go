package source

import (
	"github.com/Alturino/storefront/catalog/internal/catalog"
)

func fixtureProducts() []catalog.Product {
	return []catalog.Product{
		{
			ProductID:   "hydra-serum",
			Name:        "Hydra Serum 30 ml",
			Description: "Nem veren serum.",
			Price:       "450.00",
			Currency:    "TRY",
			Brand:       "phFormula",
			Size:        "30 ml",
			Ingredients: []string{"Hyaluronic Acid", "Panthenol"},
			Features:    []string{"Nemlendirici"},
			Benefits:    []string{},
			Images:      []string{"https://example.com/hydra.jpg"},
			ImagePaths:  []string{"images/hydra-serum-main.jpg"},
			URL:         "https://example.com/hydra-serum",
			ScrapedAt:   "2024-01-01T00:00:00Z",
		},
		{
			ProductID:   "clay-mask",
			Name:        "Clay Mask",
			Description: "Arındırıcı kil maskesi.",
			Ingredients: []string{},
			Features:    []string{},
			Benefits:    []string{"Gözenek sıkılaştırma"},
			Images:      []string{},
			ImagePaths:  []string{},
		},
	}
}
