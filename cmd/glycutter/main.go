// Command glycutter is a small demonstration CLI: it builds a handful of
// illustrative molecules programmatically (no file format parser — that
// remains out of scope) and runs extraction and post-processing splitting
// over them, printing fragment statistics. It is the cobra-based
// counterpart to the teacher's examples/*.go runnable mains.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Steinbeck-Lab/MORTAR/config"
	"github.com/Steinbeck-Lab/MORTAR/diagnostics"
	"github.com/Steinbeck-Lab/MORTAR/extractor"
	"github.com/Steinbeck-Lab/MORTAR/metrics"
	"github.com/Steinbeck-Lab/MORTAR/sugars"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "glycutter",
		Short: "Demonstrates aglycone/sugar extraction on built-in sample molecules",
	}
	root.AddCommand(newExtractCommand())
	return root
}

func newExtractCommand() *cobra.Command {
	var sample string
	var splitPost bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run extraction on a built-in sample molecule and print fragment stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, ok := samples[sample]
			if !ok {
				return fmt.Errorf("unknown sample %q (available: %s)", sample, availableSamples())
			}

			cfg := config.Resolve(config.WithPostProcessingSplits(splitPost))
			detector := sugars.NewHeuristicDetector(cfg.Settings)
			svc := extractor.NewService(diagnostics.Noop{}, metrics.Noop{})

			aglycone, fragments, _, warnings, err := svc.Extract(mol(), detector, cfg.Options)
			if err != nil {
				return err
			}

			stats := aglycone.Stats()
			fmt.Printf("aglycone: %d atoms, %d bonds\n", stats.AtomCount, stats.BondCount)
			for i, frag := range fragments {
				fs := frag.Stats()
				fmt.Printf("sugar fragment %d: %d atoms, %d bonds\n", i, fs.AtomCount, fs.BondCount)
			}
			for _, w := range warnings {
				fmt.Printf("warning: %s: %s\n", w.Code, w.Message)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "strictosidinic-acid", "built-in sample molecule name")
	cmd.Flags().BoolVar(&splitPost, "split-post", true, "apply post-processing splits to sugar fragments")

	return cmd
}

func availableSamples() string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	return fmt.Sprintf("%v", names)
}
