package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the application version, overridable at build time with
// -ldflags "-X main.Version=...".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rembg", Version)
		},
	}
}
