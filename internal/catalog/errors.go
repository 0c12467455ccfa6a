package catalog

import "github.com/go-faster/errors"

// Resolution failure kinds. Handlers map these to HTTP statuses; nothing
// else inspects resolution errors.
var (
	// ErrPackageNotFound reports that no custom package has the requested id.
	ErrPackageNotFound = errors.New("package not found")

	// ErrEmptyPackage reports a package whose product reference list is
	// empty or absent. A package with nothing to price is an error, not a
	// zero-priced result.
	ErrEmptyPackage = errors.New("package holds no product references")

	// ErrDanglingReference reports a product id with no matching record.
	// Resolution fails as a whole; an unresolved product never reaches
	// pricing.
	ErrDanglingReference = errors.New("dangling product reference")
)
