package observe

import "math"

// Direction is one of the eight cardinal and intercardinal compass sectors.
// The zero value DirectionAll acts as the filter wildcard and is never
// produced by DirectionOf.
type Direction int

const (
	DirectionAll Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{"All", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation.
func (d Direction) String() string {
	if d < DirectionAll || d > NorthWest {
		return "?"
	}
	return directionNames[d]
}

// Label returns the full compass name.
func (d Direction) Label() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "Northeast"
	case East:
		return "East"
	case SouthEast:
		return "Southeast"
	case South:
		return "South"
	case SouthWest:
		return "Southwest"
	case West:
		return "West"
	case NorthWest:
		return "Northwest"
	default:
		return "All"
	}
}

// AllDirections lists the eight sectors in compass order.
var AllDirections = []Direction{
	North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
}

// DirectionOf maps an azimuth in degrees to its compass sector. Each sector
// is 45 degrees wide and centered on its compass point, so North covers
// [337.5, 360) plus [0, 22.5), Northeast [22.5, 67.5), and so on. Azimuths
// outside [0, 360) are normalized first.
func DirectionOf(azDeg float64) Direction {
	az := math.Mod(azDeg, 360)
	if az < 0 {
		az += 360
	}
	sector := int(math.Floor((az+22.5)/45)) % 8
	return North + Direction(sector)
}

// ParseDirection maps a compass abbreviation or name to a Direction.
// Unrecognized or empty strings map to DirectionAll.
func ParseDirection(s string) Direction {
	switch s {
	case "N", "n", "North", "north":
		return North
	case "NE", "ne", "Northeast", "northeast":
		return NorthEast
	case "E", "e", "East", "east":
		return East
	case "SE", "se", "Southeast", "southeast":
		return SouthEast
	case "S", "s", "South", "south":
		return South
	case "SW", "sw", "Southwest", "southwest":
		return SouthWest
	case "W", "w", "West", "west":
		return West
	case "NW", "nw", "Northwest", "northwest":
		return NorthWest
	default:
		return DirectionAll
	}
}
