package canvas

import "github.com/lixenwraith/termframe/style"

// MapResolution selects the density of the world coastline dataset
type MapResolution uint8

const (
	MapLow MapResolution = iota
	MapHigh
)

func (r MapResolution) data() [][2]float64 {
	if r == MapHigh {
		return worldHigh
	}
	return worldLow
}

// Map is a world-coastline backdrop rendered as a point cloud in
// longitude/latitude coordinates; pair it with XBounds [-180, 180] and
// YBounds [-90, 90] for an undistorted globe
type Map struct {
	Resolution MapResolution
	Color      style.Color
}

func (m Map) Draw(p *Painter) {
	Points{Coords: m.Resolution.data(), Color: m.Color}.Draw(p)
}
