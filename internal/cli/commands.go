package cli

import (
	"github.com/fekuna/omnipos-products-cli/internal/model"
	"github.com/fekuna/omnipos-products-cli/internal/presenter"
	"github.com/fekuna/omnipos-products-cli/internal/product/dto"
	"github.com/spf13/cobra"
)

func newAddCommand(a *app) *cobra.Command {
	input := &dto.AddProductInput{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := a.products.AddProduct(cmd.Context(), input)
			return err
		},
	}

	cmd.Flags().StringVarP(&input.Name, "name", "n", "", "The product's name")
	cmd.Flags().StringVarP(&input.Market, "market", "m", "", "The market's name")
	cmd.Flags().Int64VarP(&input.Count, "count", "c", 0, "The count")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("market")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

func newDisplayCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "display",
		Short: "Display all products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.products.ListProducts(cmd.Context(), &dto.ProductFilters{})
			if err != nil {
				return err
			}
			return presenter.RenderProducts(cmd.OutOrStdout(), records)
		},
	}
}

func newSelectCommand(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the products with a given name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.products.ListProducts(cmd.Context(), &dto.ProductFilters{Name: &name})
			if err != nil {
				return err
			}
			return presenter.RenderProducts(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().StringVar(&name, "sp", "", "The required name of product")
	_ = cmd.MarkFlagRequired("sp")

	return cmd
}

func newMarketsCommand(a *app) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "markets",
		Short: "Display all markets, or the one with a given title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("title") {
				markets, err := a.markets.ListMarkets(cmd.Context())
				if err != nil {
					return err
				}
				return presenter.RenderMarkets(cmd.OutOrStdout(), markets)
			}

			m, err := a.markets.GetMarket(cmd.Context(), title)
			if err != nil {
				return err
			}
			markets := []model.Market{}
			if m != nil {
				markets = append(markets, *m)
			}
			return presenter.RenderMarkets(cmd.OutOrStdout(), markets)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "The market's exact title")

	return cmd
}
