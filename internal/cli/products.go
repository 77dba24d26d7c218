package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/amirasaad/bankdesk/infra/initializer"
	"github.com/amirasaad/bankdesk/pkg/domain/product"
)

const catalogTimeout = 10 * time.Second

func productsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			logger := initializer.SetupLogger(cfg.Log, cmd.ErrOrStderr())

			svc, err := initializer.InitializeCatalog(cfg, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), catalogTimeout)
			defer cancel()

			if err := svc.Ping(ctx); err != nil {
				return err
			}
			products, err := svc.List(ctx)
			if err != nil {
				return err
			}
			renderProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
}

func renderProducts(w io.Writer, products []product.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "(no products)")
		return
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Name, strconv.Itoa(p.Price)})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "PRICE").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}
