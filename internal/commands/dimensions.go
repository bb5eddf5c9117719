package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie4/internal/model"
)

func newDimensionsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions <file>",
		Short: "Print the dimensions and objects of a SIE file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := flags.parseFile(cmd, args[0])
			if err != nil {
				return err
			}
			return writeDimensions(cmd.OutOrStdout(), doc.Dimensions)
		},
	}
}

func writeDimensions(w io.Writer, dims []model.Dimension) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tDESCRIPTION\tPARENT")
	for _, d := range dims {
		parent := "-"
		if d.Parent != nil {
			parent = d.Parent.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Key, d.Description, parent)
	}
	return tw.Flush()
}
