package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/elbow/internal/config"
	"github.com/matzehuels/elbow/pkg/batch"
	errs "github.com/matzehuels/elbow/pkg/errors"
	elbowio "github.com/matzehuels/elbow/pkg/io"
)

// batchOpts holds the flags of the batch command.
type batchOpts struct {
	output  string
	workers int
}

// batchCommand creates the batch command for routing a JSON document.
func (c *CLI) batchCommand() *cobra.Command {
	opts := batchOpts{}

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Route every connector in a JSON batch document",
		Long: `Route every connector in a JSON batch document.

The document is read from the given file, or from stdin when the argument is
"-" or absent. Results are written as JSON to stdout or to --output, in the
same order as the connectors. A connector that fails validation gets an error
entry instead of points; the rest of the batch still routes.`,
		Example: `  elbow batch connectors.json
  cat connectors.json | elbow batch -o routes.json --workers 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			if cmd.Flags().Changed("workers") {
				if err := errs.ValidateWorkers(opts.workers); err != nil {
					return fmt.Errorf("--workers: %w", err)
				}
			} else {
				opts.workers = cfg.Batch.Workers
			}

			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			doc, err := readDocument(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			doc.Defaults = doc.Defaults.Merge(routeDefaults(cfg))

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			res, err := batch.NewRunner(logger, opts.workers).Execute(cmd.Context(), doc)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Routed %d connectors", res.Stats.Connectors))

			// Status lines go to stderr when stdout carries the JSON.
			status := cmd.ErrOrStderr()
			if opts.output != "" {
				if err := elbowio.ExportJSON(res.Results, opts.output); err != nil {
					return err
				}
				status = cmd.OutOrStdout()
				printSuccess(status, "Routed %d connectors (%d points)", res.Stats.Connectors, res.Stats.Points)
				printFile(status, opts.output)
			} else if err := elbowio.WriteJSON(res.Results, cmd.OutOrStdout()); err != nil {
				return err
			}

			reportFailures(status, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "concurrent routing goroutines (default one per CPU)")

	return cmd
}

// readDocument reads a batch document from path, or from stdin for "-".
func readDocument(path string, stdin io.Reader) (*elbowio.Document, error) {
	if path == "-" {
		return elbowio.ReadJSON(stdin)
	}
	return elbowio.ImportJSON(path)
}

// routeDefaults converts the [route] config section into batch defaults.
func routeDefaults(cfg *config.Config) elbowio.Settings {
	bias := cfg.Route.Bias
	return elbowio.Settings{Clearance: cfg.Route.Clearance, Bias: &bias}
}

func reportFailures(w io.Writer, res *batch.Result) {
	if res.Stats.Failed == 0 {
		return
	}
	printWarning(w, "%d of %d connectors failed", res.Stats.Failed, res.Stats.Connectors)
	for _, r := range res.Results.Routes {
		if r.Error != nil {
			printError(w, "%s: %s", r.ID, r.Error.Message)
		}
	}
}
