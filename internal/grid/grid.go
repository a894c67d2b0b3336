package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

// Degrees of latitude per mile is close to constant; degrees of longitude
// shrink with cos(latitude). This equirectangular approximation is accurate
// for the few-mile spacings grid analysis uses and degrades near the poles
// and for large distances, so Validate bounds both inputs.
const milesPerDegree = 69.0

const (
	MaxSize          = 10
	MaxDistanceMiles = 50.0
)

var (
	ErrInvalidSize     = errors.New("grid size must be between 1 and 10")
	ErrInvalidDistance = errors.New("grid distance must be positive and at most 50 miles")
)

// Validate checks grid parameters before any network call is made
func Validate(size int, distanceMiles float64) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if distanceMiles <= 0 || distanceMiles > MaxDistanceMiles {
		return fmt.Errorf("%w: got %g", ErrInvalidDistance, distanceMiles)
	}
	return nil
}

// Points generates an NxN grid of points around a center coordinate with the
// given spacing in miles. Points are returned in row-major order, row 0 being
// the northernmost row and column 0 the westernmost column. The center point
// itself appears in the grid only when size is odd.
func Points(center types.Coords, size int, distanceMiles float64) ([]types.GridPoint, error) {
	if err := Validate(size, distanceMiles); err != nil {
		return nil, err
	}

	latOffset := distanceMiles / milesPerDegree
	lonOffset := distanceMiles / (milesPerDegree * math.Abs(math.Cos(center.Latitude*math.Pi/180)))

	// Top-left corner of the grid
	halfSize := float64(size-1) / 2
	startLat := center.Latitude + halfSize*latOffset
	startLon := center.Longitude - halfSize*lonOffset

	points := make([]types.GridPoint, 0, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			points = append(points, types.GridPoint{
				Coords: types.NewCoords(startLat-float64(i)*latOffset, startLon+float64(j)*lonOffset),
				Row:    i,
				Col:    j,
			})
		}
	}

	return points, nil
}
