// Package model defines domain types used by the catalog service.
package model

// Product represents a priced catalog item.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Key returns the collection key of the product.
func (p Product) Key() string { return p.ID }

// ProductPatch carries the optional fields of a product update. Only the
// fields present in the request body are applied; the id is never touched.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// Apply merges the set fields of the patch into p and returns the result.
func (pt ProductPatch) Apply(p Product) Product {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	return p
}

// Package represents a seeded base bundle definition. Base packages carry
// embedded product records (empty in the default catalog) and a price
// placeholder that is never computed.
type Package struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
	Price       string    `json:"price"`
}

// Key returns the collection key of the package.
func (p Package) Key() string { return p.ID }

// CustomPackage is a user-created bundle holding product ids by weak
// reference. The referenced products are not owned: deleting a product does
// not touch the packages that mention it.
type CustomPackage struct {
	ID       string   `json:"id"`
	Products []string `json:"products"`
}

// Key returns the collection key of the custom package.
func (p CustomPackage) Key() string { return p.ID }

// PackageInfo is the resolved, priced view of a custom package with the
// referenced product records embedded in reference order.
type PackageInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
	Price       float64   `json:"price"`
}
