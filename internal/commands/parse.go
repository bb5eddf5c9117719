package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie4/internal/diag"
	"github.com/cleared-dev/sie4/internal/sie"
)

func newParseCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a SIE file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, rec, err := flags.parseFile(cmd, args[0])
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), doc, rec)
			return nil
		},
	}
}

func printSummary(w io.Writer, doc *sie.Document, rec *diag.Recorder) {
	fmt.Fprintf(w, "Company:     %s\n", doc.CompanyName)
	if doc.OrgNumber != "" {
		fmt.Fprintf(w, "Org number:  %s\n", doc.OrgNumber)
	}
	if doc.Program != "" {
		fmt.Fprintf(w, "Program:     %s %s\n", doc.Program, doc.ProgramVersion)
	}
	fmt.Fprintf(w, "SIE type:    %d\n", doc.SieType)
	fmt.Fprintf(w, "Currency:    %s\n", doc.Currency)
	if fy, ok := doc.FiscalYear(0); ok {
		fmt.Fprintf(w, "Fiscal year: %s - %s\n", fy.Start.Format("2006-01-02"), fy.End.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "Accounts:    %d\n", len(doc.Accounts))
	fmt.Fprintf(w, "Dimensions:  %d\n", len(doc.Dimensions))
	fmt.Fprintf(w, "Balances:    %d incoming, %d outgoing, %d results\n",
		len(doc.IncomingBalances), len(doc.OutgoingBalances), len(doc.Results))
	fmt.Fprintf(w, "Unknown:     %d\n", len(doc.Unknown))
	fmt.Fprintf(w, "Warnings:    %d\n", len(rec.Warnings()))
}
