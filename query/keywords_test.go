package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "stop words and short tokens dropped",
			query: "What is the SAR application?",
			want:  []string{"sar", "application"},
		},
		{
			name:  "punctuation stripped from survivors",
			query: "Find papers about machine learning!",
			want:  []string{"papers", "machine", "learning"},
		},
		{
			name:  "empty query",
			query: "",
			want:  []string{},
		},
		{
			name:  "all stop words",
			query: "what is the",
			want:  []string{},
		},
		{
			name:  "mixed case normalized",
			query: "Sentinel Imagery WEDNESDAY",
			want:  []string{"sentinel", "imagery", "wednesday"},
		},
		{
			name:  "whitespace padding trimmed",
			query: "   flood   mapping   ",
			want:  []string{"flood", "mapping"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.query))
		})
	}
}

func TestExtractKeywords_PunctuationOnlyTokenSurvivesEmpty(t *testing.T) {
	// Stripping happens after filtering, so a long punctuation token is kept
	// as an empty string. Residual behavior, relied on by the overlap rule.
	keywords := ExtractKeywords("??? sentinel")
	assert.Equal(t, []string{"", "sentinel"}, keywords)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "what posters are about sentinel?", Normalize("  What Posters are about Sentinel?  "))
	assert.Equal(t, "", Normalize("   "))
}
