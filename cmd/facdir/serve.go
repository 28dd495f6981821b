package main

import (
	"fmt"

	"github.com/fwojciec/facdir"
	"github.com/fwojciec/facdir/chi"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	records, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", facdir.ErrorMessage(err))
		return reported(err)
	}

	server := chi.NewServer(facdir.NewDirectory(records), deps.Renderer, deps.Logger)
	server.Title = c.Title

	deps.Logger.Info("serving", "addr", c.Addr, "records", len(records))
	return server.ListenAndServe(deps.Ctx, c.Addr)
}
