package webcite_test

import (
	"testing"

	"github.com/fwojciec/webcite"
	"github.com/stretchr/testify/assert"
)

func TestBuildAPAReference(t *testing.T) {
	t.Parallel()

	t.Run("all fields present", func(t *testing.T) {
		t.Parallel()

		got := webcite.BuildAPAReference(
			"https://news.example.org/x",
			"Test Article",
			[]string{"Doe, J."},
			"2023",
			"news.example.org",
		)

		assert.Equal(t, "Doe, J.. (2023). Test Article. news.example.org. Retrieved from https://news.example.org/x", got)
	})

	t.Run("multiple authors joined with comma", func(t *testing.T) {
		t.Parallel()

		got := webcite.BuildAPAReference(
			"https://example.com",
			"Title",
			[]string{"Doe, J.", "Smith, A."},
			"2020",
			"Example",
		)

		assert.Equal(t, "Doe, J., Smith, A.. (2020). Title. Example. Retrieved from https://example.com", got)
	})

	t.Run("site name stands in for missing authors", func(t *testing.T) {
		t.Parallel()

		got := webcite.BuildAPAReference("https://example.com", "Title", nil, "2020", "Example Site")

		assert.Equal(t, "Example Site. (2020). Title. Example Site. Retrieved from https://example.com", got)
	})

	t.Run("placeholders for absent fields", func(t *testing.T) {
		t.Parallel()

		got := webcite.BuildAPAReference("https://example.com", "", nil, "", "")

		assert.Equal(t, "Author. (n.d.). Title not available. . Retrieved from https://example.com", got)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		t.Parallel()

		first := webcite.BuildAPAReference("https://example.com", "T", []string{"Doe, J."}, "2020", "S")
		second := webcite.BuildAPAReference("https://example.com", "T", []string{"Doe, J."}, "2020", "S")

		assert.Equal(t, first, second)
	})
}
