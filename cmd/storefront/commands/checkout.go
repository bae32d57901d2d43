package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
)

func checkoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Show the cart with subtotal, tax and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := e.sf.Checkout(cmd.Context())
			if len(view.Lines) == 0 {
				fmt.Fprintln(e.out, dto.MsgEmptyCart)
				return nil
			}
			if err := printLines(e, view.Lines); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Subtotal: %s\nTax:      %s\nTotal:    %s\n",
				dto.FormatPrice(view.Totals.Subtotal),
				dto.FormatPrice(view.Totals.Tax),
				dto.FormatPrice(view.Totals.Total),
			)
			return nil
		},
	}
}
