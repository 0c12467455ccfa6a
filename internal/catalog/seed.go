package catalog

import (
	"catalogapi/internal/ids"
	"catalogapi/internal/model"
)

// SeedProducts returns the default product catalog written on first startup.
// Ids are generated per installation, not fixed.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: ids.New(), Name: "product 1", Description: "product 1", Price: 1000},
		{ID: ids.New(), Name: "product 2", Description: "product 2", Price: 1500},
		{ID: ids.New(), Name: "product 3", Description: "product 3", Price: 2000},
	}
}

// SeedBasePackages returns the fixed base bundle definitions. Base packages
// ship with empty product lists and an uncomputed price placeholder.
func SeedBasePackages() []model.Package {
	return []model.Package{
		{ID: ids.New(), Name: "Minimal", Description: "36.6 products included", Products: []model.Product{}, Price: ""},
		{ID: ids.New(), Name: "Standard", Description: "Standard products included", Products: []model.Product{}, Price: ""},
		{ID: ids.New(), Name: "Premium", Description: "Premium products included", Products: []model.Product{}, Price: ""},
	}
}
