package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockwright",
		Short:         "Render page builder documents",
		Long:          `blockwright builds an editor from options and plugins and renders its document into a host page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())
	return root
}
