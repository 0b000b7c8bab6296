package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/schema"
	"github.com/katalvlaran/tabopt/sheet"
	"github.com/katalvlaran/tabopt/table"
)

type templateFlags struct {
	out          string
	variables    int
	constraints  int
	origins      int
	destinations int
	size         int
}

func newTemplateCmd() *cobra.Command {
	var f templateFlags
	cmd := &cobra.Command{
		Use:   "template <maximize|minimize|transport|assignment>",
		Short: "Write a blank workbook for a problem kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return &usageError{err: err}
			}
			return emit(cmd.OutOrStdout(), f.out, templateTables(kind, f))
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", "", "workbook to write; prints the tables when empty")
	fl.IntVar(&f.variables, "variables", 2, "number of decision variables (maximize/minimize)")
	fl.IntVar(&f.constraints, "constraints", 2, "number of constraints (maximize/minimize)")
	fl.IntVar(&f.origins, "origins", 2, "number of origins (transport)")
	fl.IntVar(&f.destinations, "destinations", 2, "number of destinations (transport)")
	fl.IntVar(&f.size, "size", 3, "matrix size (assignment)")

	return cmd
}

func templateTables(kind model.Kind, f templateFlags) []*table.Table {
	switch kind {
	case model.KindTransport:
		return []*table.Table{schema.TransportTemplate(f.origins, f.destinations)}
	case model.KindAssignment:
		return []*table.Table{schema.AssignmentTemplate(f.size)}
	}
	vars, cons := schema.LinearTemplate(f.variables, f.constraints)

	return []*table.Table{vars, cons}
}

// emit writes tables to a workbook at path, or prints them when path is empty.
func emit(w io.Writer, path string, tables []*table.Table) error {
	if path == "" {
		for i, t := range tables {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := printTable(w, t); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeFile(path, func(out io.Writer) error { return sheet.WriteTables(out, tables...) }); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", path)

	return nil
}
