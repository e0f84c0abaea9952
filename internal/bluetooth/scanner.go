package bluetooth

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"tinygo.org/x/bluetooth"

	"beacon-radar.klederson.com/internal/beacon"
)

// BeaconSightedMsg is sent via tea.Program.Send for every iBeacon frame heard.
type BeaconSightedMsg struct {
	Address       string
	Advertisement beacon.Advertisement
	RSSI          int16
	At            time.Time
}

// ScanErrorMsg reports a scanner that stopped on its own.
type ScanErrorMsg struct {
	Err error
}

// Sender delivers messages into the UI loop. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Scanner produces BeaconSightedMsg values until stopped.
type Scanner interface {
	Start(s Sender) error
	Stop()
}

// BLEScanner listens for iBeacon advertisements with the system adapter.
type BLEScanner struct {
	adapter *bluetooth.Adapter
	log     *slog.Logger
	sender  Sender
	running atomic.Bool
}

// NewBLEScanner creates a scanner on the default adapter.
func NewBLEScanner(log *slog.Logger) *BLEScanner {
	return &BLEScanner{
		adapter: bluetooth.DefaultAdapter,
		log:     log,
	}
}

// Start enables the adapter and begins scanning in a goroutine. Sightings
// are sent as tea messages; non-iBeacon advertisements are dropped.
func (s *BLEScanner) Start(sender Sender) error {
	s.sender = sender

	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.running.Store(true)
	go func() {
		err := s.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running.Load() {
				return
			}
			for _, m := range result.ManufacturerData() {
				adv, err := beacon.ParseIBeacon(m.CompanyID, m.Data)
				if err != nil {
					continue
				}
				s.sender.Send(BeaconSightedMsg{
					Address:       result.Address.String(),
					Advertisement: adv,
					RSSI:          result.RSSI,
					At:            time.Now(),
				})
			}
		})
		if err != nil && s.running.Load() {
			s.log.Error("ble scan stopped", "error", err)
			s.sender.Send(ScanErrorMsg{Err: fmt.Errorf("ble scan: %w", err)})
		}
	}()

	return nil
}

// Stop halts the BLE scanner.
func (s *BLEScanner) Stop() {
	if !s.running.Swap(false) {
		return
	}
	if err := s.adapter.StopScan(); err != nil {
		s.log.Warn("stop scan", "error", err)
	}
}
