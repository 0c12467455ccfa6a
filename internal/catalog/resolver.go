// Package catalog resolves package references into priced views.
package catalog

import (
	"github.com/go-faster/errors"

	"catalogapi/internal/model"
	"catalogapi/internal/pricing"
)

// Fixed presentation literals of a resolved custom package.
const (
	customPackageName        = "custom package"
	customPackageDescription = "custom package assembled from selected products"
)

// ProductFinder looks up product records by id.
type ProductFinder interface {
	FindByID(id string) (model.Product, bool)
}

// PackageFinder looks up custom package records by id.
type PackageFinder interface {
	FindByID(id string) (model.CustomPackage, bool)
}

// Resolver turns weak product references into full, priced records.
type Resolver struct {
	products ProductFinder
	packages PackageFinder
}

// NewResolver builds a Resolver over the given collections.
func NewResolver(products ProductFinder, packages PackageFinder) *Resolver {
	return &Resolver{products: products, packages: packages}
}

// PackageInfo resolves the custom package with the given id into a priced
// view. Products appear in reference order. Fails with ErrPackageNotFound,
// ErrEmptyPackage or ErrDanglingReference.
func (r *Resolver) PackageInfo(id string) (model.PackageInfo, error) {
	pkg, ok := r.packages.FindByID(id)
	if !ok {
		return model.PackageInfo{}, errors.Wrapf(ErrPackageNotFound, "package %q", id)
	}
	if len(pkg.Products) == 0 {
		return model.PackageInfo{}, errors.Wrapf(ErrEmptyPackage, "package %q", id)
	}
	resolved, err := r.resolve(pkg.Products)
	if err != nil {
		return model.PackageInfo{}, errors.Wrapf(err, "package %q", id)
	}
	return model.PackageInfo{
		ID:          pkg.ID,
		Name:        customPackageName,
		Description: customPackageDescription,
		Products:    resolved,
		Price:       pricing.Cost(resolved),
	}, nil
}

// CostOfSelection prices an ad-hoc selection of product ids. Any id without
// a matching record fails the whole selection with ErrDanglingReference.
func (r *Resolver) CostOfSelection(ids []string) (float64, error) {
	resolved, err := r.resolve(ids)
	if err != nil {
		return 0, err
	}
	return pricing.Cost(resolved), nil
}

func (r *Resolver) resolve(ids []string) ([]model.Product, error) {
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := r.products.FindByID(id)
		if !ok {
			return nil, errors.Wrapf(ErrDanglingReference, "product %q", id)
		}
		out = append(out, p)
	}
	return out, nil
}
