// Package facelet converts between the cubie model and sticker views of the
// cube: the 54-character facelet string read by two-phase solvers, the
// 27-cell positional snapshot, and the printable sticker net.
package facelet

import "github.com/SeamusWaldron/piececube/internal/cube"

// Color is a sticker color. Its value is the letter used in facelet strings.
type Color byte

const (
	White  Color = 'W' // Up face when solved
	Red    Color = 'R' // Right face when solved
	Green  Color = 'G' // Front face when solved
	Yellow Color = 'Y' // Down face when solved
	Orange Color = 'O' // Left face when solved
	Blue   Color = 'B' // Back face when solved

	// Missing marks a facelet with no sticker in a snapshot.
	Missing Color = 'X'
)

func (c Color) String() string {
	return string(rune(c))
}

// MarshalText encodes the color as its letter.
func (c Color) MarshalText() ([]byte, error) {
	return []byte{byte(c)}, nil
}

// Name returns the lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Scheme assigns a sticker color to each face of the solved cube.
// A Scheme is a value; copies never share state.
type Scheme [cube.NumFaces]Color

// Standard is the Western color scheme: white up, green front.
var Standard = Scheme{
	cube.U: White,
	cube.R: Red,
	cube.F: Green,
	cube.D: Yellow,
	cube.L: Orange,
	cube.B: Blue,
}

// Color returns the color of face f.
func (s Scheme) Color(f cube.Face) Color {
	return s[f]
}

// Face returns the face whose center carries color c.
func (s Scheme) Face(c Color) (cube.Face, bool) {
	for f, col := range s {
		if col == c {
			return cube.Face(f), true
		}
	}
	return 0, false
}

// FaceByName looks a face up by lowercase color name ("white", "red", ...).
func (s Scheme) FaceByName(name string) (cube.Face, bool) {
	for f, col := range s {
		if col.Name() == name {
			return cube.Face(f), true
		}
	}
	return 0, false
}
