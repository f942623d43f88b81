package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kantanpro/kantanpro/internal/config"
	"github.com/kantanpro/kantanpro/internal/seed"
)

func newSeedCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample data set",
		Long:  "Load sample clients, services, suppliers, orders and chat messages. Running it twice inserts the data twice.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			sum, err := seed.Load(cmd.Context(), st)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, color.GreenString("sample data loaded"))
			fmt.Fprintf(out, "  clients:       %d\n", sum.Clients)
			fmt.Fprintf(out, "  services:      %d\n", sum.Services)
			fmt.Fprintf(out, "  suppliers:     %d\n", sum.Suppliers)
			fmt.Fprintf(out, "  orders:        %d\n", sum.Orders)
			fmt.Fprintf(out, "  chat messages: %d\n", sum.ChatMessages)
			return nil
		},
	}
}
