package main

import (
	"fmt"

	"github.com/dalemusser/stratacard/internal/app/system/icons"
	"github.com/spf13/cobra"
)

func newIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List built-in icon names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range icons.Names() {
				g, _ := icons.Lookup(name)
				if _, err := fmt.Fprintf(out, "%s\t%s\n", g.Symbol, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
