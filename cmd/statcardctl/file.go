package main

import (
	"fmt"

	"github.com/dalemusser/stratacard/internal/app/system/cardfile"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFileCmd(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Render every card in a YAML card file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := cardfile.Load(args[0])
			if err != nil {
				return err
			}

			props := make([]statcard.Props, 0, len(inputs))
			for i, in := range inputs {
				p, err := opts.toProps(in)
				if err != nil {
					return fmt.Errorf("card %d: %w", i+1, err)
				}
				props = append(props, p)
			}
			opts.logger.Debug("card file loaded", zap.String("path", args[0]), zap.Int("cards", len(props)))

			if check {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %d cards ok\n", args[0], len(props))
				return err
			}
			for _, p := range props {
				if err := opts.write(cmd.OutOrStdout(), p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "validate only, print a summary")
	return cmd
}
