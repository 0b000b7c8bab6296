package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
	"github.com/katalvlaran/tabopt/table"
)

func newExampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example <maximize|minimize|transport|assignment>",
		Short: "Write a worked example workbook for a problem kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return &usageError{err: err}
			}
			return emit(cmd.OutOrStdout(), out, exampleTables(kind))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "workbook to write; prints the tables when empty")

	return cmd
}

func exampleTables(kind model.Kind) []*table.Table {
	switch kind {
	case model.KindMaximize:
		vars, cons := schema.MaximizeExample()
		return []*table.Table{vars, cons}
	case model.KindMinimize:
		vars, cons := schema.MinimizeExample()
		return []*table.Table{vars, cons}
	case model.KindTransport:
		return []*table.Table{schema.TransportExample()}
	}

	return []*table.Table{schema.AssignmentExample()}
}
