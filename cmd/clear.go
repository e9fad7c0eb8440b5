package cmd

import (
	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"github.com/PixPMusic/gopher-launchpad/internal/midi"
	"github.com/spf13/cobra"
)

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Turn off every LED on the device",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := midi.NewManager(a.logger)
			defer manager.Close()

			return a.clear(manager)
		},
	}
}

// clear sends a single reset to the configured device. The start-up
// commands from the config are skipped; they would reset it too.
func (a *app) clear(manager *midi.Manager) error {
	dev, err := a.discover(manager, launchpad.WithLogger(a.logger), launchpad.WithID(a.cfg.Device.ID))
	if err != nil {
		return err
	}
	defer dev.Close()

	return dev.Clear()
}
