package valueobject

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	domainerror "github.com/strength-check/backend/internal/domain/error"
)

// CoordinateOrder states which number comes first in a coordinate cell.
type CoordinateOrder string

const (
	OrderLonLat CoordinateOrder = "lon_lat"
	OrderLatLon CoordinateOrder = "lat_lon"
)

// IsValid reports whether the order is known.
func (o CoordinateOrder) IsValid() bool {
	return o == OrderLatLon || o == OrderLonLat
}

// Coordinate is a geographic point taken from a tweet.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// ParseCoordinate parses a "[a, b]" cell into a coordinate.
// Brackets are optional; exactly two finite numbers separated by a comma are required.
func ParseCoordinate(raw string, order CoordinateOrder) (Coordinate, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Coordinate{}, domainerror.ErrMissingCoordinate
	}

	if strings.HasPrefix(s, "[") || strings.HasSuffix(s, "]") {
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return Coordinate{}, fmt.Errorf("%w: unbalanced brackets in %q", domainerror.ErrUnparseableCoordinate, raw)
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: expected two values in %q", domainerror.ErrUnparseableCoordinate, raw)
	}

	first, err := parseFiniteFloat(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", domainerror.ErrUnparseableCoordinate, raw, err)
	}
	second, err := parseFiniteFloat(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", domainerror.ErrUnparseableCoordinate, raw, err)
	}

	coord := Coordinate{Latitude: first, Longitude: second}
	if order == OrderLonLat {
		coord = Coordinate{Latitude: second, Longitude: first}
	}

	if coord.Latitude < -90 || coord.Latitude > 90 || coord.Longitude < -180 || coord.Longitude > 180 {
		return Coordinate{}, fmt.Errorf("%w: lat=%g lon=%g", domainerror.ErrCoordinateOutOfRange, coord.Latitude, coord.Longitude)
	}

	return coord, nil
}

func parseFiniteFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", strings.TrimSpace(s))
	}
	return v, nil
}
