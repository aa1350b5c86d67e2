package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstrace/graphio"
)

var errInvalidGraph = errors.New("invalid graph")

func newValidateCmd(_ *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "validate <graph>",
		Short: "Check a graph file and print its nodes and sorted edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := graphio.ParseFormat(output)
			if err != nil {
				return err
			}

			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()

			var summary graphio.Summary
			doc, err := graphio.Decode(fh, graphio.FormatFromPath(args[0]))
			if err != nil {
				summary = graphio.Summary{Message: err.Error(), Nodes: []string{}}
			} else {
				summary = graphio.Summarize(doc)
			}
			if err := graphio.Encode(cmd.OutOrStdout(), summary, format); err != nil {
				return err
			}
			if !summary.IsValid {
				return fmt.Errorf("%s: %w", args[0], errInvalidGraph)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")

	return cmd
}
