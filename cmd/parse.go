package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/zheng/doxgraph/internal/dispatch"
	"github.com/zheng/doxgraph/internal/export"
	"github.com/zheng/doxgraph/internal/indexer"
)

func parseCmd() *cobra.Command {
	var outputPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "parse [xml-dir]",
		Short: "Parse a Doxygen XML directory and emit the node graph as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xmlDir := "."
			if len(args) > 0 {
				xmlDir = args[0]
			}

			log := newLogger()

			var opts []dispatch.Option
			if workers > 0 {
				opts = append(opts, dispatch.WithWorkers(workers))
			}

			ix := indexer.New(xmlDir, log, opts...)
			reg, err := ix.ParseAll()
			if err != nil {
				return fmt.Errorf("parsing %s: %w", xmlDir, err)
			}

			w := os.Stdout
			if outputPath != "" && outputPath != "-" {
				w, err = os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer w.Close()
			}

			if err := export.NewExporter(reg).Export(w); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			fmt.Fprintf(os.Stderr, "parsed %s nodes\n", humanize.Comma(int64(reg.Len())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (default: number of CPUs)")

	return cmd
}

func init() {
	rootCmd.AddCommand(parseCmd())
}
