// Package ble connects to GoCube smart cubes over Bluetooth Low Energy and
// delivers their notifications as parsed frames.
package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"tinygo.org/x/bluetooth"

	"github.com/SeamusWaldron/piececube/internal/protocol"
)

// Errors
var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrDeviceNotFound   = errors.New("ble: device not found")
	ErrServiceNotFound  = errors.New("ble: GoCube service not found")
)

// BLE UUIDs
var (
	serviceUUID = bluetooth.NewUUID([16]byte(uuid.MustParse(protocol.ServiceUUID)))
	txCharUUID  = bluetooth.NewUUID([16]byte(uuid.MustParse(protocol.TxCharUUID)))
	rxCharUUID  = bluetooth.NewUUID([16]byte(uuid.MustParse(protocol.RxCharUUID)))
)

// ScanResult represents a discovered GoCube device.
type ScanResult struct {
	Name    string
	RSSI    int16
	Address bluetooth.Address
}

// Client manages the BLE connection to one GoCube.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	rxChar  bluetooth.DeviceCharacteristic

	mu         sync.RWMutex
	connected  bool
	deviceName string

	onFrame func(protocol.Frame)
	onError func(error)
}

// NewClient enables the default adapter and creates a client.
func NewClient() (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}
	return &Client{adapter: adapter}, nil
}

// OnFrame sets the callback for parsed notifications. It runs on the BLE
// stack's goroutine and must not block.
func (c *Client) OnFrame(cb func(protocol.Frame)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onFrame = cb
}

// OnError sets the callback for notifications that fail to parse.
func (c *Client) OnError(cb func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onError = cb
}

// Scan collects GoCube devices advertising until timeout or ctx ends.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	if c.IsConnected() {
		return nil, ErrAlreadyConnected
	}

	var (
		mu      sync.Mutex
		results []ScanResult
		seen    = make(map[string]bool)
		done    = make(chan error, 1)
	)

	go func() {
		done <- c.adapter.Scan(func(_ *bluetooth.Adapter, r bluetooth.ScanResult) {
			name := r.LocalName()
			if !strings.HasPrefix(strings.ToLower(name), "gocube") {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			addr := r.Address.String()
			if seen[addr] {
				return
			}
			seen[addr] = true
			results = append(results, ScanResult{Name: name, RSSI: r.RSSI, Address: r.Address})
		})
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	}
	c.adapter.StopScan()
	if err := <-done; err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	return results, nil
}

// ConnectFirst scans until the first GoCube appears and connects to it.
func (c *Client) ConnectFirst(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	found := make(chan ScanResult, 1)
	go func() {
		_ = c.adapter.Scan(func(a *bluetooth.Adapter, r bluetooth.ScanResult) {
			if strings.HasPrefix(strings.ToLower(r.LocalName()), "gocube") {
				select {
				case found <- ScanResult{Name: r.LocalName(), RSSI: r.RSSI, Address: r.Address}:
				default:
				}
				a.StopScan()
			}
		})
	}()

	select {
	case r := <-found:
		return c.Connect(r)
	case <-ctx.Done():
		c.adapter.StopScan()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrDeviceNotFound
		}
		return ctx.Err()
	}
}

// Connect connects to a scanned device and subscribes to notifications.
func (c *Client) Connect(r ScanResult) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	device, err := c.adapter.Connect(r.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		device.Disconnect()
		return ErrServiceNotFound
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover characteristics: %w", err)
	}

	var txChar, rxChar bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			txChar = ch
		case rxCharUUID:
			rxChar = ch
		}
	}

	if err := txChar.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = rxChar
	c.connected = true
	c.deviceName = r.Name
	c.mu.Unlock()

	return nil
}

// Disconnect disconnects from the current device.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	err := c.device.Disconnect()
	c.connected = false
	c.deviceName = ""
	return err
}

// IsConnected returns true if connected to a device.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// DeviceName returns the connected device name.
func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

// SendCommand sends a command to the cube.
func (c *Client) SendCommand(cmd byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}

	data := protocol.BuildCommand(cmd)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		_, err = c.rxChar.Write(data)
		return err
	}
	return nil
}

// RequestBattery asks the cube for its battery level.
func (c *Client) RequestBattery() error {
	return c.SendCommand(protocol.CmdRequestBattery)
}

// ResetSolved tells the cube to treat its current state as solved.
func (c *Client) ResetSolved() error {
	return c.SendCommand(protocol.CmdResetSolved)
}

func (c *Client) handleNotification(data []byte) {
	frame, err := protocol.ParseFrame(data)

	c.mu.RLock()
	onFrame, onError := c.onFrame, c.onError
	c.mu.RUnlock()

	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	if onFrame != nil {
		onFrame(frame)
	}
}
