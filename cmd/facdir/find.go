package main

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/facdir"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	records, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", facdir.ErrorMessage(err))
		return reported(err)
	}
	dir := facdir.NewDirectory(records)

	if c.Select != "" {
		rec, err := dir.Select(c.Select)
		if err != nil {
			fmt.Fprintln(deps.Stdout, facdir.ErrorMessage(err))
			return nil
		}
		return writeDetail(deps, rec)
	}

	res := dir.Search(c.Query)
	switch res.State {
	case facdir.SearchEmpty:
		fmt.Fprintln(deps.Stdout, "Please enter a partial or full faculty name.")
	case facdir.SearchNoMatch:
		fmt.Fprintf(deps.Stdout, "No matches found for %q.\n", res.Query)
	case facdir.SearchSingleMatch:
		return writeDetail(deps, res.Record)
	case facdir.SearchMultiMatch:
		fmt.Fprintf(deps.Stdout, "Found %d matches for %q. Select one with --select:\n", len(res.Matches), res.Query)
		t := table.NewWriter()
		t.SetOutputMirror(deps.Stdout)
		t.AppendHeader(table.Row{"#", "Name"})
		for i, name := range res.Matches {
			t.AppendRow(table.Row{i + 1, name})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}

	return nil
}

// writeDetail renders the record's HTML detail view as Markdown.
func writeDetail(deps *Dependencies, rec *facdir.Record) error {
	var buf bytes.Buffer
	if err := deps.Renderer.Detail(&buf, rec); err != nil {
		return err
	}

	md, err := deps.Converter.Convert(buf.String())
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
