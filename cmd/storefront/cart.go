package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kraitsura/storefront/pkg/cart"
	"github.com/kraitsura/storefront/pkg/model"
)

func newCartCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect or empty the local cart",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print the cart contents",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openCart(opts)
				if err != nil {
					return err
				}
				defer store.Close()
				items, err := store.Items()
				if err != nil {
					return err
				}
				printCart(cmd.OutOrStdout(), items, terminalWidth())
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every item from the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openCart(opts)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared.")
				return nil
			},
		},
	)
	return cmd
}

func openCart(opts *rootOptions) (*cart.Store, error) {
	cfg, err := opts.load()
	if err != nil {
		return nil, err
	}
	return cart.Open(cfg.CartDB)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// printCart writes a fixed-width table. The name column absorbs whatever width
// is left after the numeric columns.
func printCart(out io.Writer, items []model.CartItem, width int) {
	if len(items) == 0 {
		fmt.Fprintln(out, "Cart is empty.")
		return
	}

	const idW, qtyW, moneyW = 14, 4, 12
	nameW := width - idW - qtyW - 2*moneyW - 4
	if nameW < 8 {
		nameW = 8
	}

	row := func(id, name, qty, price, sub string) {
		fmt.Fprintf(out, "%s %s %s %s %s\n",
			runewidth.FillRight(runewidth.Truncate(id, idW, "…"), idW),
			runewidth.FillRight(runewidth.Truncate(name, nameW, "…"), nameW),
			runewidth.FillLeft(qty, qtyW),
			runewidth.FillLeft(price, moneyW),
			runewidth.FillLeft(sub, moneyW))
	}

	row("ID", "NAME", "QTY", "PRICE", "SUBTOTAL")
	for _, it := range items {
		row(it.ProductID, it.Name,
			fmt.Sprint(it.Quantity),
			fmt.Sprintf("%.2f €%s", it.Price, it.Period.Suffix()),
			fmt.Sprintf("%.2f €", it.Subtotal()))
	}
	fmt.Fprintln(out, strings.Repeat("─", idW+nameW+qtyW+2*moneyW+4))
	fmt.Fprintf(out, "%d items, total %.2f €\n", model.CartCount(items), model.CartTotal(items))
}
