package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// InvalidGeometryError represents a GeoJSON payload that could not be
// converted into a stored point geometry.
type InvalidGeometryError struct {
	Reason string
}

func (e InvalidGeometryError) Error() string {
	if e.Reason == "" {
		return "invalid geometry"
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// Is enables errors.Is matching on InvalidGeometryError.
func (e InvalidGeometryError) Is(target error) bool {
	_, ok := target.(InvalidGeometryError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidGeometryError)
	return ok
}

// ErrInvalidGeometry is the sentinel error for unparseable geometry.
var ErrInvalidGeometry = InvalidGeometryError{}
