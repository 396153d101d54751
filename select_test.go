package webcite_test

import (
	"testing"

	"github.com/fwojciec/webcite"
	"github.com/stretchr/testify/assert"
)

func TestChooseTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers citation_title over everything else", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaCitationTitle] = []string{"Scholarly Title"}
		bag[webcite.MetaOGTitle] = []string{"OG Title"}
		bag[webcite.MetaTitle] = []string{"Page Title"}

		assert.Equal(t, "Scholarly Title", webcite.ChooseTitle(bag))
	})

	t.Run("falls back to og:title when citation_title is empty", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaOGTitle] = []string{"OG Title", "Second OG Title"}
		bag[webcite.MetaTwitterTitle] = []string{"Twitter Title"}

		assert.Equal(t, "OG Title", webcite.ChooseTitle(bag))
	})

	t.Run("falls back to twitter:title and then the title element", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaTwitterTitle] = []string{"Twitter Title"}
		assert.Equal(t, "Twitter Title", webcite.ChooseTitle(bag))

		bag = webcite.NewMetaBag()
		bag[webcite.MetaTitle] = []string{"Page Title"}
		assert.Equal(t, "Page Title", webcite.ChooseTitle(bag))
	})

	t.Run("returns empty string when no candidate exists", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, webcite.ChooseTitle(webcite.NewMetaBag()))
	})
}

func TestChooseYear(t *testing.T) {
	t.Parallel()

	t.Run("extracts year from ISO timestamp", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaArticlePublishedTime] = []string{"2023-05-01T10:00:00Z"}

		assert.Equal(t, "2023", webcite.ChooseYear(bag))
	})

	t.Run("first delimited match wins within a string", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaDate] = []string{"Copyright 1998-2024", "no year here"}

		assert.Equal(t, "1998", webcite.ChooseYear(bag))
	})

	t.Run("skips candidates without a delimited year", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaDate] = []string{"no year here", "updated 2021"}

		assert.Equal(t, "2021", webcite.ChooseYear(bag))
	})

	t.Run("does not match digits embedded in longer runs", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaDate] = []string{"id 20231"}

		assert.Empty(t, webcite.ChooseYear(bag))
	})

	t.Run("respects bucket priority order", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaDate] = []string{"2001"}
		bag[webcite.MetaPublicationDate] = []string{"2019/03/02"}

		assert.Equal(t, "2019", webcite.ChooseYear(bag))
	})

	t.Run("returns empty string when nothing matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, webcite.ChooseYear(webcite.NewMetaBag()))
	})
}

func TestChooseSiteName(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:site_name", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaSiteName] = []string{"The Example Times"}

		assert.Equal(t, "The Example Times", webcite.ChooseSiteName(bag, "https://www.example.com/a"))
	})

	t.Run("falls back to the URL host", func(t *testing.T) {
		t.Parallel()

		got := webcite.ChooseSiteName(webcite.NewMetaBag(), "https://www.example.com/a/b")

		assert.Equal(t, "www.example.com", got)
	})

	t.Run("keeps the port when present", func(t *testing.T) {
		t.Parallel()

		got := webcite.ChooseSiteName(webcite.NewMetaBag(), "http://localhost:8080/page")

		assert.Equal(t, "localhost:8080", got)
	})

	t.Run("falls back to Website when the URL has no host", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Website", webcite.ChooseSiteName(webcite.NewMetaBag(), "not a url"))
	})
}

func TestChooseAuthors(t *testing.T) {
	t.Parallel()

	t.Run("citation_author values are separate names", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaCitationAuthor] = []string{"Helen J. Christensen", "Andrew Slade"}

		got := webcite.ChooseAuthors(bag)

		assert.Equal(t, []string{"Christensen, H. J.", "Slade, A."}, got)
	})

	t.Run("splits the author meta when citation_author is empty", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaAuthor] = []string{"Helen Christensen and Andrew Slade"}

		got := webcite.ChooseAuthors(bag)

		assert.Equal(t, []string{"Christensen, H.", "Slade, A."}, got)
	})

	t.Run("falls back to article:author", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaArticleAuthor] = []string{"Jane Smith; John Doe"}

		got := webcite.ChooseAuthors(bag)

		assert.Equal(t, []string{"Smith, J.", "Doe, J."}, got)
	})

	t.Run("corporate authors pass through verbatim", func(t *testing.T) {
		t.Parallel()

		bag := webcite.NewMetaBag()
		bag[webcite.MetaCitationAuthor] = []string{"World Health Organization", "Jane Smith"}

		got := webcite.ChooseAuthors(bag)

		assert.Equal(t, []string{"World Health Organization", "Smith, J."}, got)
	})

	t.Run("returns nil when no author source is present", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, webcite.ChooseAuthors(webcite.NewMetaBag()))
	})
}
