package facelet

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/piececube/internal/cube"
)

// Definition rewrites a color facelet string as face letters, the input
// two-phase solvers expect: each sticker is replaced by the face whose
// center shares its color. The solved cube becomes
// UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB.
func Definition(facelets string, scheme Scheme) (string, error) {
	if err := Validate(facelets, scheme); err != nil {
		return "", err
	}

	var byColor [256]byte
	for _, f := range cube.Faces {
		byColor[facelets[int(f)*9+4]] = f.String()[0]
	}

	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		b.WriteByte(byColor[facelets[i]])
	}
	return b.String(), nil
}

// FromDefinition is the inverse of Definition.
func FromDefinition(def string, scheme Scheme) (string, error) {
	if len(def) != Length {
		return "", fmt.Errorf("%w (got %d)", ErrLength, len(def))
	}
	b := make([]byte, Length)
	for i := 0; i < Length; i++ {
		f, ok := cube.ParseFace(def[i : i+1])
		if !ok {
			return "", fmt.Errorf("%w %q at %d", ErrUnknownColor, def[i], i)
		}
		b[i] = byte(scheme[f])
	}
	return string(b), nil
}
