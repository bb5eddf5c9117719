package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie4/internal/accounts"
)

func newAccountsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts <file>",
		Short: "Print the chart of accounts of a SIE file as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := flags.parseFile(cmd, args[0])
			if err != nil {
				return err
			}
			return accounts.WriteAccounts(cmd.OutOrStdout(), doc.Accounts)
		},
	}
}
