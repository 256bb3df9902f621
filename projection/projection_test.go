package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLatLonNorthernHemisphere(t *testing.T) {
	// UTM zone 33N, a point on the equator at the false easting, i.e. on
	// the zone's central meridian (15 degrees east).
	lat, lon, err := ToLatLon(33, true, 0, 500000)
	require.NoError(t, err)
	assert.InDelta(t, 0, lat, 1e-6)
	assert.Greater(t, lon, 14.0)
	assert.Less(t, lon, 16.0)
}

func TestToLatLonSouthernHemisphere(t *testing.T) {
	_, _, err := ToLatLon(33, false, 5000000, 500000)
	require.NoError(t, err)
}
