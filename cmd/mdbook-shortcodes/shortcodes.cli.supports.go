package main

import (
	"github.com/spf13/cobra"
	"github.com/tsoutsman/mdbook-shortcodes"
)

// newSupportsCommand answers mdBook's renderer probe through the exit code
func newSupportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   CmdNameSupports + " <renderer>",
		Short: HelpSupportsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if shortcodes.SupportsRenderer(args[0]) {
				return nil
			}
			return newExitError(ExitCodeError, "", nil)
		},
	}
}
