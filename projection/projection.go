// Package projection wraps the UTM↔lat/lon projector that the geometry
// core treats as an opaque external collaborator (see SPEC_FULL.md).
package projection

import (
	"github.com/im7mortal/UTM"
)

// ToLatLon converts a UTM northing/easting pair to latitude/longitude
// degrees for the given zone and hemisphere. The hemisphere is collapsed
// to the two representative latitude-band letters UTM accepts ("N" for
// northern, "M" for southern); callers needing band-accurate conversion
// at the poles should use a band letter directly against the UTM package.
func ToLatLon(zone int, northern bool, northing, easting float64) (lat, lon float64, err error) {
	zoneLetter := "N"
	if !northern {
		zoneLetter = "M"
	}
	return UTM.ToLatLon(easting, northing, zone, zoneLetter)
}
