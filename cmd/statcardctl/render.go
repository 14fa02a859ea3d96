package main

import (
	"github.com/dalemusser/stratacard/internal/app/system/inputval"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(opts *options) *cobra.Command {
	var in inputval.CardInput

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one card described by flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.toProps(in)
			if err != nil {
				opts.logger.Debug("card rejected", zap.Error(err))
				return err
			}
			opts.logger.Debug("rendering card",
				zap.String("title", p.Title),
				zap.String("variant", string(p.Variant)),
				zap.String("format", opts.format),
			)
			return opts.write(cmd.OutOrStdout(), p)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Title, "title", "", "card title (required)")
	f.StringVar(&in.Value, "value", "", "headline value (required)")
	f.StringVar(&in.Subtitle, "subtitle", "", "secondary line under the value")
	f.StringVar(&in.Icon, "icon", "", "built-in icon name (see: statcardctl icons)")
	f.StringVar(&in.IconSVG, "icon-svg", "", "custom SVG icon markup (needs --allow-custom-icons)")
	f.StringVar(&in.Trend, "trend", "", "trend direction: up, down or neutral")
	f.StringVar(&in.TrendValue, "trend-value", "", "trend annotation such as 8%")
	f.StringVar(&in.Variant, "variant", "", "default, success, warning or destructive")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
