package webcite_test

import (
	"testing"

	"github.com/fwojciec/webcite"
	"github.com/stretchr/testify/assert"
)

func TestIsProbableCorporateAuthor(t *testing.T) {
	t.Parallel()

	t.Run("detects organizational keywords", func(t *testing.T) {
		t.Parallel()

		assert.True(t, webcite.IsProbableCorporateAuthor("World Health Organization"))
		assert.True(t, webcite.IsProbableCorporateAuthor("Department of Education"))
		assert.True(t, webcite.IsProbableCorporateAuthor("australian research council"))
		assert.True(t, webcite.IsProbableCorporateAuthor("Centre for Policy Studies"))
	})

	t.Run("treats long names as corporate", func(t *testing.T) {
		t.Parallel()

		// Five tokens, no keyword: the token-count rule applies.
		assert.True(t, webcite.IsProbableCorporateAuthor("John Jacob Jingleheimer Schmidt Junior"))
	})

	t.Run("short personal names are not corporate", func(t *testing.T) {
		t.Parallel()

		assert.False(t, webcite.IsProbableCorporateAuthor("Jane Smith"))
		assert.False(t, webcite.IsProbableCorporateAuthor("Helen J. Christensen"))
		assert.False(t, webcite.IsProbableCorporateAuthor("Madonna"))
	})
}

func TestFormatPersonalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"given and surname", "Helen Christensen", "Christensen, H."},
		{"middle initial", "Helen J. Christensen", "Christensen, H. J."},
		{"initial only given name", "H. Christensen", "Christensen, H."},
		{"mononym unchanged", "Madonna", "Madonna"},
		{"empty input unchanged", "", ""},
		{"whitespace trimmed", "  Helen Christensen  ", "Christensen, H."},
		{"comma form normalized", "Christensen, Helen", "Helen, C."},
		{"lowercase initial upper-cased", "helen christensen", "christensen, H."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, webcite.FormatPersonalName(tt.in))
		})
	}
}

func TestSplitAuthorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"comma separated", "Helen Christensen, Andrew Slade", []string{"Helen Christensen", "Andrew Slade"}},
		{"semicolon separated", "Helen Christensen; Andrew Slade", []string{"Helen Christensen", "Andrew Slade"}},
		{"and separated", "Helen Christensen and Andrew Slade", []string{"Helen Christensen", "Andrew Slade"}},
		{"mixed comma and and", "A, B and C", []string{"A", "B", "C"}},
		{"single name", "Helen Christensen", []string{"Helen Christensen"}},
		{"separators only fall back to input", " , ; ", []string{", ;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, webcite.SplitAuthorString(tt.in))
		})
	}
}
