package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dalemusser/stratacard/internal/app/system/inputval"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
	"github.com/dalemusser/stratacard/internal/app/system/termcard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	formatHTML = "html"
	formatTerm = "term"
)

// options are the flags shared by every subcommand.
type options struct {
	verbose          bool
	format           string
	width            int
	allowCustomIcons bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "statcardctl",
		Short:        "Render stat cards as HTML or terminal boxes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				opts.logger = l
			}
			switch opts.format {
			case formatHTML, formatTerm:
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatHTML, formatTerm)
			}
			if opts.width < termcard.MinWidth {
				opts.width = termcard.MinWidth
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")
	pf.StringVarP(&opts.format, "format", "f", formatHTML, "output format: html or term")
	pf.IntVarP(&opts.width, "width", "w", 40, "box width for --format term")
	pf.BoolVar(&opts.allowCustomIcons, "allow-custom-icons", false, "accept --icon-svg / icon_svg markup")

	root.AddCommand(
		newRenderCmd(opts),
		newFileCmd(opts),
		newIconsCmd(),
	)
	return root
}

// toProps validates in and converts it for rendering. Validation messages
// are returned as a single error so the command exits non-zero.
func (o *options) toProps(in inputval.CardInput) (statcard.Props, error) {
	p, res, err := inputval.ValidateCard(in, o.allowCustomIcons)
	if res.HasErrors() {
		return statcard.Props{}, fmt.Errorf("invalid card: %s", res.All())
	}
	if err != nil {
		return statcard.Props{}, fmt.Errorf("invalid card: %w", err)
	}
	return p, nil
}

// write renders p to w in the selected format, ending with a newline.
func (o *options) write(w io.Writer, p statcard.Props) error {
	if o.format == formatTerm {
		_, err := io.WriteString(w, termcard.Render(p, o.width)+"\n")
		return err
	}
	var sb strings.Builder
	if err := statcard.Render(&sb, p); err != nil {
		return fmt.Errorf("render card: %w", err)
	}
	_, err := io.WriteString(w, strings.TrimSpace(sb.String())+"\n")
	return err
}
