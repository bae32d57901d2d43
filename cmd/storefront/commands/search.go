package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
)

func searchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Check a name across every supported suffix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := e.sf.Submit(cmd.Context(), args[0])
			if err != nil {
				return e.fail(cmd.Context(), err)
			}
			return printCandidates(e, results)
		},
	}
}

func printCandidates(e *env, results []availability.Candidate) error {
	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	for _, c := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Domain(), dto.FormatPrice(c.Price), c.Status)
	}
	return tw.Flush()
}
