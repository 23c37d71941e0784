// Command bitonic-bench sorts 2^bits random uint32 values sequentially and in
// parallel and reports how long each run took.
//
// Usage:
//
//	bitonic-bench [flags] <number of elements in bits>
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:          "bitonic-bench <bits>",
		Short:        "Compare sequential and parallel bitonic sort",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.parse(args[0]); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	f := cmd.Flags()
	f.Int32VarP(&opts.workers, "workers", "w", opts.workers, "fork-join pool size (0 means GOMAXPROCS)")
	f.IntVarP(&opts.threshold, "threshold", "t", opts.threshold, "smallest half size that is forked")
	f.StringVarP(&opts.orderName, "order", "o", opts.orderName, "sort order: ascending or descending")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	return cmd
}
