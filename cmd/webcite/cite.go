package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/webcite"
	"github.com/fwojciec/webcite/cite"
	"github.com/fwojciec/webcite/goquery"
	wchttp "github.com/fwojciec/webcite/http"
	wcslog "github.com/fwojciec/webcite/slog"
	"github.com/fwojciec/webcite/sqlite"
)

// CiteCmd fetches a single page and prints the citation outputs.
type CiteCmd struct {
	URL     string        `arg:"" help:"Web address to cite"`
	Output  string        `short:"o" help:"Write the RIS record to a file"`
	DB      string        `help:"SQLite database path; when set the citation is saved to history"`
	Timeout time.Duration `short:"t" default:"15s" help:"Fetch timeout"`
	Verbose bool          `short:"v" help:"Log fetch and pipeline details to stderr"`
}

// Run executes the cite command.
func (c *CiteCmd) Run(deps *Dependencies) error {
	fetcher := wchttp.NewFetcher(wchttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	var generator webcite.Generator = cite.NewGenerator(fetcher, goquery.NewCollector())
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		generator = wcslog.NewLoggingGenerator(
			cite.NewGenerator(wcslog.NewLoggingFetcher(fetcher, logger), goquery.NewCollector()),
			logger,
		)
	}

	citation, err := generator.Generate(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()

		if err := sqlite.NewCitationService(db).CreateCitation(deps.Ctx, citation); err != nil {
			return err
		}
	}

	printCitation(deps.Stdout, citation)

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(citation.RIS), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", c.Output, err)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Output)
	}

	return nil
}

// printCitation prints the detected metadata and both rendered outputs.
func printCitation(w io.Writer, citation *webcite.Citation) {
	title := citation.Title
	if title == "" {
		title = "Not found"
	}
	authors := strings.Join(citation.Authors, ", ")
	if authors == "" {
		authors = "Not found"
	}
	year := citation.Year
	if year == "" {
		year = "Not found"
	}

	fmt.Fprintf(w, "Title:     %s\n", title)
	fmt.Fprintf(w, "Authors:   %s\n", authors)
	fmt.Fprintf(w, "Year:      %s\n", year)
	fmt.Fprintf(w, "Site name: %s\n", citation.SiteName)
	fmt.Fprintf(w, "\nAPA reference:\n%s\n", citation.APA)
	fmt.Fprintf(w, "\nRIS record:\n%s", citation.RIS)
}
