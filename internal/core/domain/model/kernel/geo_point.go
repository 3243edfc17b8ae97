package kernel

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in decimal degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the northernmost valid latitude in decimal degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the westernmost valid longitude in decimal degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the easternmost valid longitude in decimal degrees.
	LongitudeMax float64 = 180
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized
// GeoPoint. GeoPoints must be created via the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a delivery destination as
// WGS84 decimal-degree coordinates. Orders carry it optionally: customers may
// place orders with only a street address, in which case no GeoPoint exists.
//
// The zero value is invalid and fails Validate; use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(28.6139, 77.2090)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after validating that latitude lies in
// [LatitudeMin..LatitudeMax] and longitude in [LongitudeMin..LongitudeMax].
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through its constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String implements fmt.Stringer for logging and debugging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// IsEqual compares two geo points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

// setLat sets the latitude with validation.
// Pointer receiver is intentional: private setters self-encapsulate the
// range checks performed during construction.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// setLng sets the longitude with validation.
func (p *GeoPoint) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	p.lng = lng
	return nil
}
