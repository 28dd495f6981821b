package main

import (
	"fmt"

	"github.com/fwojciec/facdir"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	info, err := deps.StoreInfo()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", facdir.ErrorMessage(err))
		return reported(err)
	}

	records, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", facdir.ErrorMessage(err))
		return reported(err)
	}
	stats := facdir.NewDirectory(records).Stats()

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendRows([]table.Row{
		{"File", info.Path},
		{"Updated", info.ModTime.Format("2006-01-02 15:04")},
		{"Size", fmt.Sprintf("%d bytes", info.Size)},
		{"Checksum", info.Checksum},
		{"Records", stats.Records},
		{"With research", stats.WithResearch},
		{"With website", stats.WithWebsite},
		{"With email", stats.WithEmail},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()

	return nil
}
