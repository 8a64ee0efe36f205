package protocol

import "fmt"

// Event is a decoded frame: one of []Rotation, Battery, CubeType,
// Orientation, or Raw for types without a decoder.
type Event any

// Raw carries a frame whose type has no decoder.
type Raw struct {
	Frame Frame
}

// Decode decodes the payload of f according to its type.
func Decode(f Frame) (Event, error) {
	var (
		ev  Event
		err error
	)
	switch f.Type {
	case MsgTypeRotation:
		ev, err = DecodeRotation(f.Payload)
	case MsgTypeBattery:
		ev, err = DecodeBattery(f.Payload)
	case MsgTypeCubeType:
		ev, err = DecodeCubeType(f.Payload)
	case MsgTypeOrientation:
		ev, err = DecodeOrientation(f.Payload)
	default:
		return Raw{Frame: f}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s frame: %w", TypeName(f.Type), err)
	}
	return ev, nil
}
