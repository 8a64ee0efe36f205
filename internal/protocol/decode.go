package protocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/piececube/pkg/types"
)

// Rotation is a single quarter turn reported by the cube.
type Rotation struct {
	Code              byte   // Raw face+direction code (0x00-0x0B)
	CenterOrientation byte   // Orientation of the turned center
	Clockwise         bool   // Direction of rotation
	Color             string // Center color of the turned face
}

// Battery is a battery level notification.
type Battery struct {
	Level int // 0-100 percentage
}

// CubeType is a cube type notification.
type CubeType struct {
	Code byte
	Name string
}

// Orientation is the cube's attitude, as a unit quaternion, and the faces
// it puts up and towards the solver.
type Orientation struct {
	Q     quaternion.Quaternion
	Up    types.Face
	Front types.Face
}

// Center colors in rotation code order.
var colorNames = [...]string{"blue", "green", "white", "yellow", "red", "orange"}

// DecodeRotation decodes a rotation payload: pairs of
// [face_dir] [center_orientation]. Even codes turn clockwise.
func DecodeRotation(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("protocol: rotation payload must have even length, got %d", len(payload))
	}

	rots := make([]Rotation, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		idx := int(code / 2)
		if idx >= len(colorNames) {
			return nil, fmt.Errorf("protocol: unknown color index %d from face code 0x%02X", idx, code)
		}
		rots = append(rots, Rotation{
			Code:              code,
			CenterOrientation: payload[i+1],
			Clockwise:         code%2 == 0,
			Color:             colorNames[idx],
		})
	}
	return rots, nil
}

// DecodeBattery decodes a battery payload.
func DecodeBattery(payload []byte) (Battery, error) {
	if len(payload) < 1 {
		return Battery{}, fmt.Errorf("protocol: battery payload too short")
	}
	return Battery{Level: int(payload[0])}, nil
}

// DecodeCubeType decodes a cube type payload.
func DecodeCubeType(payload []byte) (CubeType, error) {
	if len(payload) < 1 {
		return CubeType{}, fmt.Errorf("protocol: cube type payload too short")
	}
	name := "standard"
	if payload[0] == 0x01 {
		name = "edge"
	}
	return CubeType{Code: payload[0], Name: name}, nil
}

// DecodeOrientation decodes an orientation payload, the ASCII string
// "x#y#z#w" of raw quaternion components.
func DecodeOrientation(payload []byte) (Orientation, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return Orientation{}, fmt.Errorf("protocol: orientation payload must have 4 parts, got %d", len(parts))
	}
	// the last part may carry trailing bytes
	parts[3] = leadingNumber(parts[3])

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Orientation{}, fmt.Errorf("protocol: orientation component %d: %w", i, err)
		}
		v[i] = f
	}

	mag := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
	if mag == 0 {
		return Orientation{}, fmt.Errorf("protocol: zero orientation quaternion")
	}
	q := quaternion.Quaternion{W: v[3] / mag, X: v[0] / mag, Y: v[1] / mag, Z: v[2] / mag}

	return Orientation{
		Q:     q,
		Up:    nearestFace(q.RotateVec3(quaternion.Vec3{Y: 1})),
		Front: nearestFace(q.RotateVec3(quaternion.Vec3{Z: 1})),
	}, nil
}

func leadingNumber(s string) string {
	end := 0
	for i, r := range s {
		if (r == '-' && i == 0) || (r >= '0' && r <= '9') || r == '.' {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}

// nearestFace returns the face whose outward axis is closest to v, with x
// towards R, y towards U and z towards F.
func nearestFace(v quaternion.Vec3) types.Face {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ay >= ax && ay >= az:
		if v.Y > 0 {
			return types.FaceU
		}
		return types.FaceD
	case az >= ax:
		if v.Z > 0 {
			return types.FaceF
		}
		return types.FaceB
	case v.X > 0:
		return types.FaceR
	default:
		return types.FaceL
	}
}
