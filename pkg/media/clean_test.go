package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string // substrings expected in the output
		not   []string // substrings that must be gone
	}{
		{
			name:  "links keep their target",
			input: `<p>Check out <a href="https://example.com/page">our page</a> for more.</p>`,
			want:  []string{"our page (https://example.com/page)"},
			not:   []string{"<a", "</a>"},
		},
		{
			name:  "bare link stays as url",
			input: `<p>Visit <a href="https://example.com">https://example.com</a></p>`,
			want:  []string{"https://example.com"},
			not:   []string{"("},
		},
		{
			name:  "list items become bullets",
			input: `<ul><li>first point</li><li>second point</li></ul>`,
			want:  []string{"• first point", "• second point"},
			not:   []string{"<li>"},
		},
		{
			name:  "entities unescaped",
			input: `<p>Bits &amp; Bytes &gt; everything</p>`,
			want:  []string{"Bits & Bytes > everything"},
		},
		{
			name:  "script content dropped",
			input: `<p>visible</p><script>alert("nope")</script>`,
			want:  []string{"visible"},
			not:   []string{"alert"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanDescription(tt.input)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, n := range tt.not {
				assert.NotContains(t, got, n)
			}
		})
	}
}

func TestCleanDescription_ParagraphStructure(t *testing.T) {
	input := `<p>First paragraph.</p><p>Second paragraph.</p>`
	got, err := CleanDescription(input)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", got)
}

func TestCleanDescription_Truncation(t *testing.T) {
	sentence := "This sentence pads the show notes with enough text to overflow the limit. "
	input := "<p>" + strings.Repeat(sentence, 100) + "</p>"

	got, err := CleanDescription(input)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(got), descriptionMaxLen)
	assert.True(t, strings.HasSuffix(got, "."), "cut at a sentence boundary, got tail %q", got[len(got)-20:])
}

func TestCleanDescription_Empty(t *testing.T) {
	got, err := CleanDescription("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
