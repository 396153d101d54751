package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/webcite"
	"github.com/fwojciec/webcite/cite"
	"github.com/fwojciec/webcite/goquery"
	wchttp "github.com/fwojciec/webcite/http"
	wcslog "github.com/fwojciec/webcite/slog"
	"github.com/fwojciec/webcite/sqlite"
)

// ServeCmd runs the interactive web UI.
type ServeCmd struct {
	Addr    string        `default:":8080" help:"Listen address"`
	DB      string        `help:"SQLite database path; when set citations are saved and downloadable"`
	Timeout time.Duration `short:"t" default:"15s" help:"Fetch timeout per page"`
}

// Run executes the serve command. It blocks until the server stops.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))

	fetcher := wcslog.NewLoggingFetcher(wchttp.NewFetcher(wchttp.WithTimeout(c.Timeout)), logger)
	defer fetcher.Close()

	generator := wcslog.NewLoggingGenerator(cite.NewGenerator(fetcher, goquery.NewCollector()), logger)

	var citations webcite.CitationService
	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		citations = sqlite.NewCitationService(db)
	}

	server := wchttp.NewServer(generator, citations)

	logger.Info("listening", "addr", c.Addr)
	return http.ListenAndServe(c.Addr, server)
}
