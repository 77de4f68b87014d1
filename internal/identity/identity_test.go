package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"name with email", "John Doe <john@x.com>", "john doe"},
		{"uppercase and extra spaces", "  JOHN   DOE  ", "john doe"},
		{"plain name", "John Doe", "john doe"},
		{"tabs and newlines", "John\t Doe\n", "john doe"},
		{"empty string", "", ""},
		{"email only", "<john@x.com>", ""},
		{"unicode passes through", "José Álvarez <j@x.com>", "josé álvarez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"John Doe <john@x.com>",
		"  JOHN   DOE  ",
		"José Álvarez",
		"",
		"weird <a@b> trailing <c@d>",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	assert.Equal(t, Normalize("John Doe <john@x.com>"), Normalize("  JOHN   DOE  "))
}

func TestEmail(t *testing.T) {
	email, ok := Email("John Doe <john@x.com>")
	assert.True(t, ok)
	assert.Equal(t, "john@x.com", email)

	_, ok = Email("John Doe")
	assert.False(t, ok)

	_, ok = Email("John Doe <>")
	assert.False(t, ok, "empty brackets carry no email")
}

func TestSet(t *testing.T) {
	s := NewSet("b", "a", "b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("A"), "membership is by exact string value")
	assert.Equal(t, []string{"a", "b"}, s.Sorted())

	u := s.Union(NewSet("c", "a"))
	assert.Equal(t, []string{"a", "b", "c"}, u.Sorted())
	assert.Equal(t, 2, s.Len(), "union must not mutate the receiver")

	c := s.Clone()
	c.Add("z")
	assert.False(t, s.Has("z"))
}
