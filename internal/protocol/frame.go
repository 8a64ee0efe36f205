// Package protocol decodes the GoCube smart cube BLE protocol: message
// framing, payload decoding and conversion of rotations into face turns.
package protocol

import (
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs (Nordic UART).
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // Notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // Write
)

// Message types sent by the cube.
const (
	MsgTypeRotation    byte = 0x01
	MsgTypeState       byte = 0x02
	MsgTypeOrientation byte = 0x03
	MsgTypeBattery     byte = 0x05
	MsgTypeCubeType    byte = 0x08
)

// Commands written to the RX characteristic.
const (
	CmdRequestBattery     byte = 0x32
	CmdRequestState       byte = 0x33
	CmdResetSolved        byte = 0x35
	CmdDisableOrientation byte = 0x37
	CmdEnableOrientation  byte = 0x38
	CmdFlashBacklight     byte = 0x41
	CmdRequestCubeType    byte = 0x56
)

const (
	framePrefix  byte = 0x2A // '*'
	frameSuffix1 byte = 0x0D // CR
	frameSuffix2 byte = 0x0A // LF
)

// Errors returned by ParseFrame.
var (
	ErrInvalidPrefix   = errors.New("protocol: invalid frame prefix")
	ErrInvalidSuffix   = errors.New("protocol: invalid frame suffix")
	ErrInvalidChecksum = errors.New("protocol: invalid checksum")
	ErrFrameTooShort   = errors.New("protocol: frame too short")
	ErrInvalidLength   = errors.New("protocol: invalid frame length")
)

// Frame is one parsed notification.
type Frame struct {
	Type    byte
	Payload []byte
}

// ParseFrame parses a raw notification.
//
// Layout: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A], where
// length counts the bytes after itself and the checksum is the byte sum of
// everything before it.
func ParseFrame(data []byte) (Frame, error) {
	if len(data) < 6 {
		return Frame{}, ErrFrameTooShort
	}
	if data[0] != framePrefix {
		return Frame{}, ErrInvalidPrefix
	}

	end := 2 + int(data[1])
	if end < 6 || len(data) < end {
		return Frame{}, fmt.Errorf("%w: declared %d, got %d", ErrInvalidLength, end, len(data))
	}
	if data[end-2] != frameSuffix1 || data[end-1] != frameSuffix2 {
		return Frame{}, ErrInvalidSuffix
	}

	sumIdx := end - 3
	if got := checksum(data[:sumIdx]); got != data[sumIdx] {
		return Frame{}, fmt.Errorf("%w: frame says 0x%02X, computed 0x%02X", ErrInvalidChecksum, data[sumIdx], got)
	}

	payload := make([]byte, sumIdx-3)
	copy(payload, data[3:sumIdx])
	return Frame{Type: data[2], Payload: payload}, nil
}

// Bytes encodes the frame the way the cube sends notifications.
func (f Frame) Bytes() []byte {
	out := make([]byte, 0, len(f.Payload)+6)
	out = append(out, framePrefix, byte(len(f.Payload)+4), f.Type)
	out = append(out, f.Payload...)
	out = append(out, checksum(out))
	return append(out, frameSuffix1, frameSuffix2)
}

// BuildCommand creates a command for the cube. Commands carry a fixed
// length byte of 1: [0x2A] [0x01] [cmd] [checksum] [0x0D] [0x0A].
func BuildCommand(cmd byte) []byte {
	const length byte = 0x01
	return []byte{framePrefix, length, cmd, framePrefix + length + cmd, frameSuffix1, frameSuffix2}
}

// TypeName returns a readable name for a message type.
func TypeName(msgType byte) string {
	switch msgType {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	case MsgTypeCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", msgType)
	}
}

func checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return sum
}
