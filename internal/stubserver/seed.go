package stubserver

import (
	"github.com/shopspring/decimal"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

var allSizes = []string{"S", "M", "L", "XL", "XXL"}

// SeedDemo loads a small clothing catalog and a staff account so the stub is
// usable out of the box. The staff credentials are for local development
// only.
func SeedDemo(store *Store) error {
	store.SeedProducts([]domain.Product{
		{
			ID:         "prod-tshirt-01",
			Name:       "Classic Crew Tee",
			Category:   "T-Shirts",
			Price:      decimal.NewFromInt(25),
			OfferPrice: decimal.NewFromInt(20),
			Sizes:      allSizes,
			Image:      []string{"/images/crew-tee.jpg"},
			InStock:    true,
			Popular:    true,
		},
		{
			ID:         "prod-hoodie-01",
			Name:       "Fleece Hoodie",
			Category:   "Hoodies",
			Price:      decimal.NewFromInt(60),
			OfferPrice: decimal.NewFromInt(48),
			Sizes:      []string{"M", "L", "XL"},
			Image:      []string{"/images/fleece-hoodie.jpg"},
			InStock:    true,
		},
		{
			ID:         "prod-jeans-01",
			Name:       "Slim Fit Jeans",
			Category:   "Jeans",
			Price:      decimal.NewFromInt(80),
			OfferPrice: decimal.NewFromInt(65),
			Sizes:      []string{"S", "M", "L"},
			Image:      []string{"/images/slim-jeans.jpg"},
			InStock:    true,
		},
	}, []domain.Category{
		{ID: "cat-tshirts", Name: "T-Shirts"},
		{ID: "cat-hoodies", Name: "Hoodies"},
		{ID: "cat-jeans", Name: "Jeans"},
	})

	if _, err := store.SeedUser("Store Admin", "admin@example.com", "Admin12345", domain.RoleAdmin); err != nil {
		return err
	}
	return nil
}
