package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
)

func cartCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or change the cart",
	}
	cmd.AddCommand(cartListCmd(e), cartAddCmd(e), cartRemoveCmd(e))
	return cmd
}

func cartListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the cart with its subtotal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := e.sf.State(cmd.Context())
			if len(view.Lines) == 0 {
				fmt.Fprintln(e.out, dto.MsgEmptyCart)
				return nil
			}
			if err := printLines(e, view.Lines); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Subtotal: %s\n", dto.FormatPrice(view.Subtotal))
			return nil
		},
	}
}

// cartAddCmd looks name up and adds the result for tld, so the price added is
// always the one the registrar just quoted.
func cartAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <tld>",
		Short: "Add a domain to the cart, e.g. add foo com",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := e.sf.Submit(ctx, args[0]); err != nil {
				return e.fail(ctx, err)
			}

			line, err := e.sf.AddResult(ctx, availability.NormalizeSuffix(args[1]))
			if err != nil {
				return e.fail(ctx, err)
			}
			fmt.Fprintf(e.out, "Added %s for %s\n", line.Domain(), dto.FormatPrice(line.Price))
			return nil
		},
	}
}

func cartRemoveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the line at index as shown by cart list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q is not a number: %w", args[0], domain.ErrValidation)
			}

			line, err := e.sf.RemoveFromCart(cmd.Context(), idx)
			if err != nil {
				return e.fail(cmd.Context(), err)
			}
			fmt.Fprintf(e.out, "Removed %s\n", line.Domain())
			return nil
		},
	}
}

func printLines(e *env, lines []cart.Line) error {
	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	for i, l := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, l.Domain(), dto.FormatPrice(l.Price))
	}
	return tw.Flush()
}
