package main

import (
	"fmt"

	"github.com/fwojciec/webcite"
	"github.com/fwojciec/webcite/sqlite"
)

// HistoryCmd lists previously saved citations, newest first.
type HistoryCmd struct {
	DB    string `required:"" help:"SQLite database path"`
	Limit int    `default:"20" help:"Maximum number of citations to list"`
}

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	citations, err := sqlite.NewCitationService(db).FindCitations(deps.Ctx, webcite.CitationFilter{
		Limit: c.Limit,
	})
	if err != nil {
		return err
	}

	if len(citations) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved citations.")
		return nil
	}

	for _, citation := range citations {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", citation.CreatedAt.Format("2006-01-02 15:04"), citation.ID, citation.SourceURL)
		fmt.Fprintf(deps.Stdout, "    %s\n", citation.APA)
	}

	return nil
}
