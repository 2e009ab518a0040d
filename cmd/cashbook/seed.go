package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo employees, transactions and payslips",
		Long: `Insert the demo data set into an empty cash book.

Nothing is inserted when employees already exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.injector.Seeder.Seed(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Skipped {
				fmt.Fprintln(out, "Cash book already contains employees, nothing seeded.")
				return nil
			}
			fmt.Fprintf(out, "Seeded %d employees, %d transactions and %d payslips.\n",
				result.Employees, result.Transactions, result.Payslips)
			return nil
		},
	}
}
