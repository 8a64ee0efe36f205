package piececube

import (
	"context"
	"sync"
	"time"

	"github.com/SeamusWaldron/piececube/internal/ble"
	"github.com/SeamusWaldron/piececube/internal/facelet"
	"github.com/SeamusWaldron/piececube/internal/protocol"
)

// Device represents a discovered GoCube device.
// Devices are returned by Scan and can be passed to Connect.
type Device struct {
	Name string // Device name (e.g., "GoCube_XXXX")
	RSSI int16  // Signal strength in dBm

	result ble.ScanResult
}

// Orientation is the cube's physical orientation in space.
type Orientation struct {
	UpFace    Face // Which face is pointing up
	FrontFace Face // Which face is facing the user
}

// GoCube is a connected GoCube smart cube. It mirrors every reported turn
// into a Tracker.
//
//	g, err := piececube.ConnectFirst(ctx, 10*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
type GoCube struct {
	client *ble.Client
	scheme facelet.Scheme

	mu      sync.RWMutex
	tracker *Tracker
	battery int
	entered []string

	onMove        func(Move)
	onGoal        func(string)
	onOrientation func(Orientation)
	onBattery     func(int)
	onError       func(error)
}

// Scan discovers nearby GoCube devices.
//
// Note: ensure the cube is not connected to another device (e.g., phone app).
func Scan(ctx context.Context, timeout time.Duration) ([]Device, error) {
	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}

	results, err := client.Scan(ctx, timeout)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, len(results))
	for i, r := range results {
		devices[i] = Device{Name: r.Name, RSSI: r.RSSI, result: r}
	}
	return devices, nil
}

// Connect connects to a scanned device.
func Connect(device Device, opts ...Option) (*GoCube, error) {
	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}

	g := newGoCube(client, opts...)
	if err := client.Connect(device.result); err != nil {
		return nil, err
	}
	return g, nil
}

// ConnectFirst connects to the first GoCube seen within timeout.
func ConnectFirst(ctx context.Context, timeout time.Duration, opts ...Option) (*GoCube, error) {
	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}

	g := newGoCube(client, opts...)
	if err := client.ConnectFirst(ctx, timeout); err != nil {
		return nil, err
	}
	return g, nil
}

func newGoCube(client *ble.Client, opts ...Option) *GoCube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	g := &GoCube{
		client:  client,
		scheme:  cfg.scheme,
		tracker: NewTracker(opts...),
		battery: -1,
	}
	g.tracker.OnGoal(func(name string) {
		g.entered = append(g.entered, name)
	})

	if client != nil {
		client.OnFrame(g.handleFrame)
		client.OnError(g.fireError)
	}
	return g
}

// Close disconnects from the cube.
func (g *GoCube) Close() error {
	return g.client.Disconnect()
}

// DeviceName returns the connected device name.
func (g *GoCube) DeviceName() string {
	return g.client.DeviceName()
}

// RequestBattery asks the cube to report its battery level.
func (g *GoCube) RequestBattery() error {
	return g.client.RequestBattery()
}

// OnMove sets a callback that fires for each turn reported by the cube.
func (g *GoCube) OnMove(cb func(Move)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onMove = cb
}

// OnGoal sets a callback that fires when the cube enters the D cross or
// the solved state.
func (g *GoCube) OnGoal(cb func(name string)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onGoal = cb
}

// OnOrientationChange sets a callback for orientation reports.
func (g *GoCube) OnOrientationChange(cb func(Orientation)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onOrientation = cb
}

// OnBattery sets a callback for battery level updates.
func (g *GoCube) OnBattery(cb func(int)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onBattery = cb
}

// OnError sets a callback for notifications that could not be decoded.
func (g *GoCube) OnError(cb func(error)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onError = cb
}

// Cube returns a copy of the mirrored cube.
func (g *GoCube) Cube() *Cube {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tracker.Cube()
}

// IsSolved returns true if the mirrored cube is solved.
func (g *GoCube) IsSolved() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tracker.IsSolved()
}

// Battery returns the last reported battery level, or -1 if unknown.
func (g *GoCube) Battery() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.battery
}

// Reset sets the mirrored cube to solved. The physical cube is told to do
// the same when connected.
func (g *GoCube) Reset() error {
	g.mu.Lock()
	g.tracker.Reset()
	g.mu.Unlock()

	if g.client == nil {
		return nil
	}
	return g.client.ResetSolved()
}

func (g *GoCube) handleFrame(f protocol.Frame) {
	ev, err := protocol.Decode(f)
	if err != nil {
		g.fireError(err)
		return
	}

	switch ev := ev.(type) {
	case []protocol.Rotation:
		g.handleRotations(ev)
	case protocol.Battery:
		g.mu.Lock()
		g.battery = ev.Level
		cb := g.onBattery
		g.mu.Unlock()
		if cb != nil {
			cb(ev.Level)
		}
	case protocol.Orientation:
		g.mu.RLock()
		cb := g.onOrientation
		g.mu.RUnlock()
		if cb != nil {
			cb(Orientation{UpFace: ev.Up, FrontFace: ev.Front})
		}
	}
}

func (g *GoCube) handleRotations(rots []protocol.Rotation) {
	moves, err := protocol.RotationMoves(rots, g.scheme)
	if err != nil {
		g.fireError(err)
		return
	}

	for _, m := range moves {
		g.mu.Lock()
		g.entered = g.entered[:0]
		g.tracker.ApplyMove(m)
		entered := append([]string(nil), g.entered...)
		onMove, onGoal := g.onMove, g.onGoal
		g.mu.Unlock()

		if onMove != nil {
			onMove(m)
		}
		if onGoal != nil {
			for _, name := range entered {
				onGoal(name)
			}
		}
	}
}

func (g *GoCube) fireError(err error) {
	g.mu.RLock()
	cb := g.onError
	g.mu.RUnlock()
	if cb != nil {
		cb(err)
	}
}
