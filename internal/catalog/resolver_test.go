package catalog

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"catalogapi/internal/model"
)

type fakeProducts map[string]model.Product

func (f fakeProducts) FindByID(id string) (model.Product, bool) {
	p, ok := f[id]
	return p, ok
}

type fakePackages map[string]model.CustomPackage

func (f fakePackages) FindByID(id string) (model.CustomPackage, bool) {
	p, ok := f[id]
	return p, ok
}

func testResolver() *Resolver {
	products := fakeProducts{
		"a": {ID: "a", Name: "product a", Price: 10},
		"b": {ID: "b", Name: "product b", Price: 20.12345},
	}
	packages := fakePackages{
		"pkg":      {ID: "pkg", Products: []string{"a", "b"}},
		"empty":    {ID: "empty", Products: nil},
		"dangling": {ID: "dangling", Products: []string{"a", "gone"}},
	}
	return NewResolver(products, packages)
}

func TestPackageInfoResolvesInOrder(t *testing.T) {
	r := testResolver()
	info, err := r.PackageInfo("pkg")
	require.NoError(t, err)
	require.Equal(t, "pkg", info.ID)
	require.Equal(t, "custom package", info.Name)
	require.Len(t, info.Products, 2)
	require.Equal(t, "a", info.Products[0].ID)
	require.Equal(t, "b", info.Products[1].ID)
	require.Equal(t, 30.1235, info.Price)
}

func TestPackageInfoNotFound(t *testing.T) {
	r := testResolver()
	_, err := r.PackageInfo("ghost")
	require.True(t, errors.Is(err, ErrPackageNotFound), "got %v", err)
}

func TestPackageInfoEmptyReferenceList(t *testing.T) {
	r := testResolver()
	_, err := r.PackageInfo("empty")
	require.True(t, errors.Is(err, ErrEmptyPackage), "got %v", err)
}

func TestPackageInfoDanglingReference(t *testing.T) {
	r := testResolver()
	info, err := r.PackageInfo("dangling")
	require.True(t, errors.Is(err, ErrDanglingReference), "got %v", err)
	require.Empty(t, info.Products, "no partial result on failed resolution")
}

func TestCostOfSelection(t *testing.T) {
	r := testResolver()
	cost, err := r.CostOfSelection([]string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, 30.1235, cost)
}

func TestCostOfSelectionDangling(t *testing.T) {
	r := testResolver()
	_, err := r.CostOfSelection([]string{"a", "gone"})
	require.True(t, errors.Is(err, ErrDanglingReference), "got %v", err)
}

func TestSeedShapes(t *testing.T) {
	ps := SeedProducts()
	require.Len(t, ps, 3)
	for _, p := range ps {
		require.Len(t, p.ID, 8)
	}
	pkgs := SeedBasePackages()
	require.Len(t, pkgs, 3)
	require.Equal(t, "Minimal", pkgs[0].Name)
	for _, pkg := range pkgs {
		require.NotNil(t, pkg.Products)
		require.Empty(t, pkg.Products)
	}
}
