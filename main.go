package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"beacon-radar.klederson.com/internal/app"
	"beacon-radar.klederson.com/internal/bluetooth"
	"beacon-radar.klederson.com/internal/config"
	"beacon-radar.klederson.com/internal/logger"
)

var (
	flagDemo     bool
	flagAdapter  string
	flagConfig   string
	flagUUIDs    []string
	flagLogLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beacon-radar",
		Short: "Beacon Radar - iBeacon proximity indicator for the terminal",
		Long: `Beacon Radar monitors a set of iBeacon regions and ranges the beacons in
them, showing how close the nearest one is as a colored indicator:
red when it is right here, orange when near, blue when far.

Requires sudo or CAP_NET_ADMIN capability for real Bluetooth scanning.
Use --demo flag for demonstration mode without Bluetooth hardware.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run in demo mode with simulated beacons (no Bluetooth required)")
	rootCmd.Flags().StringVar(&flagAdapter, "adapter", "", "Bluetooth adapter to use (default from config, hci0)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringArrayVar(&flagUUIDs, "uuid", nil, "Additional beacon proximity UUID to monitor (repeatable)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg.AddUUIDs(flagUUIDs)
	if flagAdapter != "" {
		cfg.Scan.Adapter = flagAdapter
	}
	if flagLogLevel != "" {
		cfg.Logger.Level = flagLogLevel
	}

	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	model := app.New(app.Options{Config: cfg, Demo: flagDemo, Logger: log})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	// Start scanners with reference to the tea program
	if err := model.StartScanners(p); err != nil {
		log.Error("cannot start scanning", "error", err)
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		if errors.Is(err, bluetooth.ErrAdapterOff) {
			fmt.Fprintf(os.Stderr, "Power on the adapter first, e.g. bluetoothctl power on\n")
		}
		fmt.Fprintln(os.Stderr, "Bluetooth scanning requires BlueZ and elevated permissions.")
		fmt.Fprintln(os.Stderr, "Try one of:")
		fmt.Fprintln(os.Stderr, "  sudo ./beacon-radar")
		fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./beacon-radar")
		fmt.Fprintln(os.Stderr, "  ./beacon-radar --demo    (demo mode, no hardware needed)")
		return err
	}

	_, err = p.Run()
	model.StopScanning()
	return err
}
