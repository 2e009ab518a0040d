package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/application/usecase/report"
	"github.com/cashbook/backend/internal/domain/entity"
	"github.com/cashbook/backend/internal/domain/ledger"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print or export cash book and profit/loss reports",
	}

	cmd.PersistentFlags().String("period", "month", "period: day, week, month or year")
	cmd.PersistentFlags().String("date", "", "reference date YYYY-MM-DD (default today)")
	cmd.PersistentFlags().StringP("output", "o", "", "write the exported file to this path instead of printing")

	cashBook := &cobra.Command{
		Use:   "cash-book",
		Short: "Cash book with running balance",
		Args:  cobra.NoArgs,
		RunE:  runCashBook,
	}
	cashBook.Flags().String("format", "pdf", "export format when --output is set: csv, xlsx or pdf")

	profitLoss := &cobra.Command{
		Use:   "profit-loss",
		Short: "Profit and loss statement",
		Args:  cobra.NoArgs,
		RunE:  runProfitLoss,
	}

	cmd.AddCommand(cashBook, profitLoss)
	return cmd
}

func periodFlags(cmd *cobra.Command) (report.PeriodInput, string) {
	period, _ := cmd.Flags().GetString("period")
	date, _ := cmd.Flags().GetString("date")
	output, _ := cmd.Flags().GetString("output")
	return report.PeriodInput{Period: period, Date: date}, output
}

func runCashBook(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	input, output := periodFlags(cmd)
	if output != "" {
		format, _ := cmd.Flags().GetString("format")
		artifact, err := a.injector.ExportCashBook.Execute(cmd.Context(), report.ExportCashBookInput{
			PeriodInput: input,
			Format:      format,
		})
		if err != nil {
			return err
		}
		return writeArtifact(cmd.OutOrStdout(), output, artifact)
	}

	book, err := a.injector.CashBook.Execute(cmd.Context(), input)
	if err != nil {
		return err
	}
	printCashBook(cmd.OutOrStdout(), book)
	return nil
}

func runProfitLoss(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	input, output := periodFlags(cmd)
	if output != "" {
		artifact, err := a.injector.ExportProfitLoss.Execute(cmd.Context(), input)
		if err != nil {
			return err
		}
		return writeArtifact(cmd.OutOrStdout(), output, artifact)
	}

	statement, err := a.injector.ProfitLoss.Execute(cmd.Context(), input)
	if err != nil {
		return err
	}
	printProfitLoss(cmd.OutOrStdout(), statement)
	return nil
}

func writeArtifact(out io.Writer, path string, artifact *adapter.Artifact) error {
	if err := os.WriteFile(path, artifact.Body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(out, "Wrote %s (%d bytes)\n", path, len(artifact.Body))
	return nil
}

func printCashBook(out io.Writer, book *report.GetCashBookOutput) {
	fmt.Fprintf(out, "Cash book (%s) %s\n\n", book.Period, book.Range.Label())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Date\tDescription\tCategory\tIncome\tExpense\tBalance\t")
	for _, row := range book.Rows {
		income, expense := row.Amount.StringFixed(2), ""
		if row.Kind == entity.TransactionTypeExpense {
			income, expense = "", row.Amount.StringFixed(2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Date, row.Description, row.Category, income, expense, row.Balance.StringFixed(2))
	}
	fmt.Fprintf(w, "\tTotal\t\t%s\t%s\t%s\t\n",
		book.Totals.Income.StringFixed(2), book.Totals.Expense.StringFixed(2), book.FinalBalance.StringFixed(2))
	_ = w.Flush()
}

func printProfitLoss(out io.Writer, statement *report.GetProfitLossOutput) {
	s := statement.Summary
	fmt.Fprintf(out, "Profit and loss (%s) %s\n\n", statement.Period, statement.Range.Label())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	printBreakdown(w, "Revenue", s.RevenueBreakdown)
	fmt.Fprintf(w, "Total revenue\t%s\t\n\n", s.Revenue.StringFixed(2))
	printBreakdown(w, "Costs", s.CostBreakdown)
	fmt.Fprintf(w, "Total costs\t%s\t\n\n", s.Costs.StringFixed(2))
	fmt.Fprintf(w, "Profit\t%s\t\n", s.Profit.StringFixed(2))
	fmt.Fprintf(w, "Margin\t%s%%\t\n", s.MarginPercent.StringFixed(2))
	_ = w.Flush()
}

func printBreakdown(w io.Writer, title string, totals []ledger.CategoryTotal) {
	fmt.Fprintln(w, title)
	for _, t := range totals {
		fmt.Fprintf(w, "  %s\t%s\t%.1f%%\n", t.Category, t.Amount.StringFixed(2), t.Percentage)
	}
}
