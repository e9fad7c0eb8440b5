package cmd

import (
	"fmt"

	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"github.com/PixPMusic/gopher-launchpad/internal/midi"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List MIDI ports and the device that would be selected",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := midi.NewManager(a.logger)
			defer manager.Close()

			return printPorts(cmd, manager, a.cfg.Device.Name)
		},
	}
}

func printPorts(cmd *cobra.Command, manager *midi.Manager, name string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Inputs:")
	for _, port := range manager.ListInPorts() {
		fmt.Fprintf(out, "  %s\n", port)
	}
	fmt.Fprintln(out, "Outputs:")
	for _, port := range manager.ListOutPorts() {
		fmt.Fprintf(out, "  %s\n", port)
	}

	in, o, ok := launchpad.Match(manager.Inputs(), manager.Outputs(), name)
	if !ok {
		fmt.Fprintf(out, "No device matching %q\n", name)
		return nil
	}
	fmt.Fprintf(out, "Selected: %s -> %s\n", in.Name(), o.Name())
	return nil
}
