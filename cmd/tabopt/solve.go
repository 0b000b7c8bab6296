package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tabopt/model"
	"github.com/katalvlaran/tabopt/result"
	"github.com/katalvlaran/tabopt/sheet"
	"github.com/katalvlaran/tabopt/table"
)

type solveFlags struct {
	file   string
	sense  string
	out    string
	format string
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <maximize|minimize|transport|assignment>",
		Short: "Solve a problem read from a workbook",
		Long: `Reads the workbook given with -f, validates it for the requested problem kind,
solves it and prints the result. Maximization and minimization read the
"modelo" and "restricciones" sheets; transportation and assignment read "costos".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args[0], f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "input workbook (.xlsx)")
	fl.StringVar(&f.sense, "sense", "min", "assignment objective: min or max")
	fl.StringVarP(&f.out, "out", "o", "", "write the result and inputs to this workbook")
	fl.StringVar(&f.format, "format", "text", "output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, kindArg string, f solveFlags) error {
	kind, err := model.ParseKind(kindArg)
	if err != nil {
		return &usageError{err: err}
	}
	sense, err := model.ParseSense(f.sense)
	if err != nil {
		return &usageError{err: err}
	}
	render, err := renderer(f.format)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(f.file)
	if err != nil {
		return usagef("read %s: %v", f.file, err)
	}
	tables, err := readTables(kind, data)
	if err != nil {
		return err
	}

	r, err := a.runner()
	if err != nil {
		return err
	}
	res, err := r.Solve(cmd.Context(), kind, sense, tables...)
	if err != nil {
		return err
	}

	if f.out != "" {
		if err = writeResult(f.out, res, tables); err != nil {
			return err
		}
	}

	return render(cmd.OutOrStdout(), res)
}

func readTables(kind model.Kind, data []byte) ([]*table.Table, error) {
	switch kind {
	case model.KindMaximize, model.KindMinimize:
		vars, cons, err := sheet.ReadLinear(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return []*table.Table{vars, cons}, nil
	case model.KindTransport:
		t, err := sheet.ReadTransport(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return []*table.Table{t}, nil
	case model.KindAssignment:
		t, err := sheet.ReadAssignment(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return []*table.Table{t}, nil
	}

	return nil, usagef("unsupported kind %s", kind)
}

func writeResult(path string, res *result.SolveResult, inputs []*table.Table) error {
	return writeFile(path, func(w io.Writer) error {
		return sheet.WriteResult(w, res, inputs...)
	})
}

// writeFile creates path and hands it to fn, closing it either way.
func writeFile(path string, fn func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = fn(out); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
