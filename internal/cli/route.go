package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/elbow/internal/config"
	"github.com/matzehuels/elbow/internal/server"
	"github.com/matzehuels/elbow/pkg/elbow"
	errs "github.com/matzehuels/elbow/pkg/errors"
	elbowio "github.com/matzehuels/elbow/pkg/io"
)

// routeOpts holds the flags of the route command.
type routeOpts struct {
	from, to  string
	clearance float64
	bias      float64
	format    string
}

// routeCommand creates the route command for routing a single connector.
func (c *CLI) routeCommand() *cobra.Command {
	opts := routeOpts{}

	cmd := &cobra.Command{
		Use:   "route --from X,Y[,DIR] --to X,Y[,DIR]",
		Short: "Route one connector between two anchors",
		Long: `Route one connector between two anchors.

Each anchor is "X,Y" or "X,Y,DIR" where DIR is one of x+, x-, y+, y- or none.
A facing direction forces the route to leave or arrive along that axis.`,
		Example: `  elbow route --from 0,0 --to 3,2
  elbow route --from 100,100,x+ --to 300,200,y+ --clearance 50
  elbow route --from 0,0 --to 4,2 --bias 0 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			from, err := parseAnchor(opts.from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := parseAnchor(opts.to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			options := cfg.RouteOptions()
			if cmd.Flags().Changed("clearance") {
				options = append(options, elbow.WithClearance(opts.clearance))
			}
			if cmd.Flags().Changed("bias") {
				options = append(options, elbow.WithBias(opts.bias))
			}
			format := cfg.Output.Format
			if cmd.Flags().Changed("format") {
				format = opts.format
			}

			path, err := elbow.Route(from, to, options...)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("routed", "from", from, "to", to, "points", len(path))

			out := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return elbowio.WriteJSON(server.RouteResponse{Points: path}, out)
			case config.FormatText:
				printInfo(out, "%s %s %s", from, iconArrow, to)
				printPath(out, path)
				return nil
			default:
				return errs.New(errs.ErrCodeInvalidInput, "unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "first anchor as X,Y[,DIR]")
	cmd.Flags().StringVar(&opts.to, "to", "", "second anchor as X,Y[,DIR]")
	cmd.Flags().Float64Var(&opts.clearance, "clearance", 0, "distance kept from a faced anchor (default: 10% of the larger span)")
	cmd.Flags().Float64Var(&opts.bias, "bias", elbow.DefaultBias, "position of the middle leg between the anchors, 0 to 1")
	cmd.Flags().StringVar(&opts.format, "format", config.FormatText, "output format: text or json")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// parseAnchor parses "X,Y" or "X,Y,DIR".
func parseAnchor(s string) (elbow.Anchor, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return elbow.Anchor{}, errs.New(errs.ErrCodeInvalidInput, "anchor %q: want X,Y or X,Y,DIR", s)
	}

	var coords [2]float64
	for i := range coords {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return elbow.Anchor{}, errs.Wrap(errs.ErrCodeInvalidCoordinate, err, "anchor %q", s)
		}
		coords[i] = v
	}

	var dir elbow.Direction
	if len(parts) == 3 {
		d, err := elbow.ParseDirection(parts[2])
		if err != nil {
			return elbow.Anchor{}, err
		}
		dir = d
	}
	return elbow.NewAnchor(coords[0], coords[1], dir), nil
}
