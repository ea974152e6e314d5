package format

import "fmt"

// NullCoord is the coordinate grid value meaning "no location".
const NullCoord int32 = -1

// Coord is an unpacked coordinate grid value.
type Coord struct {
	Plane int
	X     int
	Y     int
}

// UnpackCoordGrid reads plane from bits 28-31 (sign kept), x from the 14 bits
// starting at bit 7 and y from the low 14 bits. The x and y fields overlap in
// bits 7-13, so a Coord does not pack back into the same value.
func UnpackCoordGrid(v int32) Coord {
	return Coord{
		Plane: int(v >> 28),
		X:     int((v >> 7) & 0x3FFF),
		Y:     int(v & 0x3FFF),
	}
}

// String renders the coordinate as "plane_x_y".
func (c Coord) String() string {
	return fmt.Sprintf("%d_%d_%d", c.Plane, c.X, c.Y)
}

// FormatCoordGrid renders v as "plane_x_y", or "null" for NullCoord.
func FormatCoordGrid(v int32) string {
	if v == NullCoord {
		return "null"
	}
	return UnpackCoordGrid(v).String()
}
