package valueobject

import (
	"errors"
	"testing"

	domainerror "github.com/strength-check/backend/internal/domain/error"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		order       CoordinateOrder
		expected    Coordinate
		expectedErr error
	}{
		{
			name:     "bracketed lat lon",
			raw:      "[40.64656067, -73.78334045]",
			order:    OrderLatLon,
			expected: Coordinate{Latitude: 40.64656067, Longitude: -73.78334045},
		},
		{
			name:     "bracketed lon lat is swapped",
			raw:      "[-73.78334045, 40.64656067]",
			order:    OrderLonLat,
			expected: Coordinate{Latitude: 40.64656067, Longitude: -73.78334045},
		},
		{
			name:     "surrounding whitespace",
			raw:      "  [ 1.5 ,2.5 ]  ",
			order:    OrderLatLon,
			expected: Coordinate{Latitude: 1.5, Longitude: 2.5},
		},
		{
			name:     "bare comma separated pair",
			raw:      "10, 20",
			order:    OrderLatLon,
			expected: Coordinate{Latitude: 10, Longitude: 20},
		},
		{
			name:     "zero pair",
			raw:      "[0.0, 0.0]",
			order:    OrderLatLon,
			expected: Coordinate{},
		},
		{
			name:        "empty cell",
			raw:         "   ",
			order:       OrderLatLon,
			expectedErr: domainerror.ErrMissingCoordinate,
		},
		{
			name:        "single value",
			raw:         "[40.6]",
			order:       OrderLatLon,
			expectedErr: domainerror.ErrUnparseableCoordinate,
		},
		{
			name:        "three values",
			raw:         "[1, 2, 3]",
			order:       OrderLatLon,
			expectedErr: domainerror.ErrUnparseableCoordinate,
		},
		{
			name:        "unbalanced brackets",
			raw:         "[1, 2",
			order:       OrderLatLon,
			expectedErr: domainerror.ErrUnparseableCoordinate,
		},
		{
			name:        "not a number",
			raw:         "[north, 2]",
			order:       OrderLatLon,
			expectedErr: domainerror.ErrUnparseableCoordinate,
		},
		{
			name:        "nan is rejected",
			raw:         "[NaN, 2]",
			order:       OrderLatLon,
			expectedErr: domainerror.ErrUnparseableCoordinate,
		},
		{
			name:        "infinity is rejected",
			raw:         "[1, -Inf]",
			order:       OrderLatLon,
			expectedErr: domainerror.ErrUnparseableCoordinate,
		},
		{
			name:        "latitude out of range",
			raw:         "[-73.78, 140.64]",
			order:       OrderLonLat,
			expectedErr: domainerror.ErrCoordinateOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, err := ParseCoordinate(tt.raw, tt.order)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				if coord != (Coordinate{}) {
					t.Errorf("expected zero coordinate on error, got %+v", coord)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if coord != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, coord)
			}
		})
	}
}

func TestCoordinateErrorCode(t *testing.T) {
	_, err := ParseCoordinate("[x, y]", OrderLatLon)
	if code := domainerror.CoordinateErrorCode(err); code != domainerror.ErrCodeUnparseableCoordinate {
		t.Errorf("expected %s, got %s", domainerror.ErrCodeUnparseableCoordinate, code)
	}

	_, err = ParseCoordinate("", OrderLatLon)
	if code := domainerror.CoordinateErrorCode(err); code != domainerror.ErrCodeMissingCoordinate {
		t.Errorf("expected %s, got %s", domainerror.ErrCodeMissingCoordinate, code)
	}

	_, err = ParseCoordinate("[95, 0]", OrderLatLon)
	if code := domainerror.CoordinateErrorCode(err); code != domainerror.ErrCodeCoordinateOutOfRange {
		t.Errorf("expected %s, got %s", domainerror.ErrCodeCoordinateOutOfRange, code)
	}
}
