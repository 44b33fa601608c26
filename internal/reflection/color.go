package reflection

import rl "github.com/gen2brain/raylib-go/raylib"

// MixAdditive adds light channel-wise, saturating at 255. Alpha keeps the
// more opaque of the two.
func MixAdditive(a, b rl.Color) rl.Color {
	return rl.Color{
		R: addSat(a.R, b.R),
		G: addSat(a.G, b.G),
		B: addSat(a.B, b.B),
		A: max(a.A, b.A),
	}
}

// MixAverage blends two colors half and half.
func MixAverage(a, b rl.Color) rl.Color {
	return rl.Color{
		R: avg(a.R, b.R),
		G: avg(a.G, b.G),
		B: avg(a.B, b.B),
		A: avg(a.A, b.A),
	}
}

// ColorsClose reports whether every RGB channel of a and b differs by at
// most tolerance. Alpha is ignored.
func ColorsClose(a, b rl.Color, tolerance uint8) bool {
	return absDiff(a.R, b.R) <= tolerance &&
		absDiff(a.G, b.G) <= tolerance &&
		absDiff(a.B, b.B) <= tolerance
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func avg(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + 1) / 2)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
