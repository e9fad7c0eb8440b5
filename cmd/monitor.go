package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PixPMusic/gopher-launchpad/internal/config"
	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"github.com/PixPMusic/gopher-launchpad/internal/metrics"
	"github.com/PixPMusic/gopher-launchpad/internal/midi"
	"github.com/spf13/cobra"
)

func newMonitorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Log pad events and light pads while they are held",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.monitor(ctx)
		},
	}
}

func (a *app) monitor(ctx context.Context) error {
	manager := midi.NewManager(a.logger)
	defer manager.Close()

	opts := []launchpad.Option{
		launchpad.WithLogger(a.logger),
		launchpad.WithID(a.cfg.Device.ID),
	}
	if a.cfg.Metrics.Enabled {
		collector := metrics.NewCollector()
		opts = append(opts, launchpad.WithObserver(collector))

		srv := &http.Server{Addr: a.cfg.Metrics.Address, Handler: collector.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server failed", "error", err)
			}
		}()
		defer a.stopMetrics(srv, 2*time.Second)
		a.logger.Info("serving metrics", "address", a.cfg.Metrics.Address)
	}

	dev, err := a.open(manager, opts...)
	if err != nil {
		return err
	}
	defer dev.Close()

	warnMappingMode(a.logger, a.cfg.Device.MappingMode)

	highlight := launchpad.Amber.WithFlashing(a.cfg.Device.Flashing)

	dev.OnPadPress(func(pad launchpad.Pad) {
		a.logger.Info("pad pressed", "row", pad.Row, "column", pad.Column)
		if err := dev.LedOn(pad, highlight); err != nil {
			a.logger.Warn("failed to light pad", "error", err)
		}
	})
	dev.OnPadRelease(func(pad launchpad.Pad) {
		a.logger.Info("pad released", "row", pad.Row, "column", pad.Column)
		if err := dev.LedOff(pad); err != nil {
			a.logger.Warn("failed to clear pad", "error", err)
		}
	})
	dev.OnControlPadPress(func(column int) {
		a.logger.Info("control pad pressed", "column", column)
		if err := dev.ControlLedOn(column, launchpad.Green); err != nil {
			a.logger.Warn("failed to light control pad", "error", err)
		}
	})
	dev.OnControlPadRelease(func(column int) {
		a.logger.Info("control pad released", "column", column)
		if err := dev.ControlLedOff(column); err != nil {
			a.logger.Warn("failed to clear control pad", "error", err)
		}
	})

	a.logger.Info("monitoring, press Ctrl+C to stop")
	<-ctx.Done()

	return dev.Clear()
}

// stopMetrics shuts the metrics server down, waiting at most timeout for
// in-flight scrapes
func (a *app) stopMetrics(srv *http.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.logger.Error("metrics server shutdown failed", "error", err)
	}
}

// warnMappingMode logs when the device sends notes in a layout that
// HandleMessage does not decode
func warnMappingMode(logger *slog.Logger, mode config.MappingMode) {
	if mode == config.MappingDrum {
		logger.Warn("drum rack mapping selected, pad events are decoded as X-Y and will not match the pads pressed")
	}
}

// discover finds the configured device without sending anything to it
func (a *app) discover(manager *midi.Manager, opts ...launchpad.Option) (*midi.Device, error) {
	dev, err := manager.Discover(a.cfg.Device.Name, opts...)
	if errors.Is(err, launchpad.ErrNotFound) {
		return nil, fmt.Errorf("no MIDI device matching %q (see \"gopher-launchpad list\")", a.cfg.Device.Name)
	}
	return dev, err
}

// open discovers the configured device and applies its start-up settings
func (a *app) open(manager *midi.Manager, opts ...launchpad.Option) (*midi.Device, error) {
	dev, err := a.discover(manager, opts...)
	if err != nil {
		return nil, err
	}

	if err := initDevice(dev.Controller, a.cfg.Device); err != nil {
		dev.Close()
		return nil, fmt.Errorf("failed to initialise device: %w", err)
	}
	return dev, nil
}

// initDevice sends the start-up commands selected by cfg
func initDevice(ctrl *launchpad.Controller, cfg config.DeviceConfig) error {
	if cfg.ClearOnStart {
		if err := ctrl.Clear(); err != nil {
			return err
		}
	}

	switch cfg.MappingMode {
	case config.MappingDrum:
		if err := ctrl.SetDrumMappingMode(); err != nil {
			return err
		}
	default:
		if err := ctrl.SetXYMappingMode(); err != nil {
			return err
		}
	}

	if cfg.Flashing {
		return ctrl.EnableFlashing()
	}
	return ctrl.DisableFlashing()
}
