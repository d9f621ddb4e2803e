package geo

import (
	"fmt"
	"hash/fnv"

	"github.com/mmcloughlin/geohash"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/models"
)

// maxJitterDegrees bounds the pseudo-random offset applied around a
// district center on each axis.
const maxJitterDegrees = 0.025

const geohashPrecision = 7

type center struct {
	Lat float64
	Lng float64
}

// Fixed district centers. The dataset carries no usable addresses, so pins
// are scattered around these rather than geocoded.
var districtCenters = map[models.District]center{
	models.DistrictSukhbaatar:       {47.9184, 106.9177},
	models.DistrictKhanUul:          {47.8908, 106.9536},
	models.DistrictChingeltei:       {47.9245, 106.9034},
	models.DistrictBayanzurkh:       {47.9066, 107.0044},
	models.DistrictSonginoKhairkhan: {47.9089, 106.8041},
	models.DistrictBayangol:         {47.9078, 106.8637},
	models.DistrictUnknown:          {47.9184, 106.9177},
}

// CoordinateFor derives a stable coordinate for a listing from its district
// and id. The jitter is a pure hash of (district, id, axis), so the same
// pair always produces the same point and map pins stay put across reloads
// and filter changes.
func CoordinateFor(district models.District, id int) (lat, lng float64) {
	c, ok := districtCenters[district]
	if !ok {
		c = districtCenters[models.DistrictUnknown]
	}
	return c.Lat + jitter(district, id, "lat"), c.Lng + jitter(district, id, "lng")
}

// GeohashFor encodes the synthesized coordinate of a listing, giving the
// map a stable clustering key per pin.
func GeohashFor(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, geohashPrecision)
}

// jitter maps (district, id, axis) to a uniform offset in
// [-maxJitterDegrees, maxJitterDegrees).
func jitter(district models.District, id int, axis string) float64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%s", district, id, axis)
	// Top 53 bits as a float in [0, 1).
	u := float64(h.Sum64()>>11) / float64(uint64(1)<<53)
	return (u*2 - 1) * maxJitterDegrees
}
