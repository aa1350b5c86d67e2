package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstrace/builder"
	"github.com/katalvlaran/mstrace/graphio"
)

func newGenCmd(_ *app) *cobra.Command {
	var (
		topology string
		size     int
		p        float64
		seed     int64
		minW     int
		maxW     int
		ids      string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a graph document for a classic topology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := graphio.ParseFormat(output)
			if err != nil {
				return err
			}
			ctor, err := builder.ByName(topology, size, p)
			if err != nil {
				return fmt.Errorf("%w (known: %s)", err, strings.Join(builder.Topologies(), ", "))
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(minW, maxW)}
			switch ids {
			case "decimal":
			case "symbol":
				opts = append(opts, builder.WithSymbolIDs())
			case "excel":
				opts = append(opts, builder.WithExcelColumnIDs())
			default:
				return fmt.Errorf("unknown id scheme %q (decimal, symbol, excel)", ids)
			}

			edges, err := builder.Build(opts, ctor)
			if err != nil {
				return err
			}

			return graphio.Encode(cmd.OutOrStdout(), graphio.Document{Edges: edges}, format)
		},
	}

	f := cmd.Flags()
	f.StringVar(&topology, "topology", "complete", "Topology: "+strings.Join(builder.Topologies(), ", "))
	f.IntVar(&size, "size", 5, "Vertex count (side length for grid)")
	f.Float64Var(&p, "p", 0.3, "Edge probability for random")
	f.Int64Var(&seed, "seed", 1, "RNG seed")
	f.IntVar(&minW, "min", 1, "Minimum integer weight (≥ 1)")
	f.IntVar(&maxW, "max", 10, "Maximum integer weight")
	f.StringVar(&ids, "ids", "excel", "Vertex ID scheme: decimal, symbol, excel")
	f.StringVarP(&output, "output", "o", "yaml", "Output format: json or yaml")

	return cmd
}
