package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabopt/result"
	"github.com/katalvlaran/tabopt/table"
)

type renderFunc func(io.Writer, *result.SolveResult) error

func renderer(format string) (renderFunc, error) {
	switch format {
	case "text", "":
		return renderText, nil
	case "json":
		return renderJSON, nil
	case "yaml":
		return renderYAML, nil
	}

	return nil, usagef("unknown format %q (want text, json or yaml)", format)
}

func renderJSON(w io.Writer, res *result.SolveResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}

func renderYAML(w io.Writer, res *result.SolveResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}

	return enc.Close()
}

func renderText(w io.Writer, res *result.SolveResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "problem:\t%s\n", res.Kind)
	fmt.Fprintf(tw, "status:\t%s\n", res.Status)
	if v, ok := res.ObjectiveValue(); ok {
		fmt.Fprintf(tw, "objective:\t%s\n", num(v))
	}
	if res.Message != "" {
		fmt.Fprintf(tw, "message:\t%s\n", res.Message)
	}

	switch res.Shape {
	case result.ShapeVariables:
		if len(res.Variables) > 0 {
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "VARIABLE\tVALUE")
		}
		for _, v := range res.Variables {
			fmt.Fprintf(tw, "%s\t%s\n", v.Name, num(v.Value))
		}
	case result.ShapePairs:
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "ROW\tCOLUMN\tCOST")
		for _, p := range res.Pairs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Row, p.Col, num(p.Cost))
		}
	}

	return tw.Flush()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// printTable renders an input table with its sheet name as a heading.
func printTable(w io.Writer, t *table.Table) error {
	fmt.Fprintf(w, "[%s]\n", t.Name)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	labeled := len(t.Index) > 0
	if labeled {
		fmt.Fprint(tw, "\t")
	}
	for k, c := range t.Columns {
		if k > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
	for i, row := range t.Rows {
		if labeled {
			fmt.Fprintf(tw, "%s\t", t.Label(i))
		}
		for k, cell := range row {
			if k > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cellText(cell))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return num(x)
	}

	return cast.ToString(v)
}
