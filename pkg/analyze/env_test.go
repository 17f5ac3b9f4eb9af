package analyze

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]string
	}{
		{
			name:     "simple pairs",
			content:  "A=1\nB=2\n",
			expected: map[string]string{"A": "1", "B": "2"},
		},
		{
			name:     "skips blanks and comments",
			content:  "\n# comment\n   # indented comment\nKEY=value\n",
			expected: map[string]string{"KEY": "value"},
		},
		{
			name:     "splits on first equals only",
			content:  "URL=postgres://u:p@host?a=b\n",
			expected: map[string]string{"URL": "postgres://u:p@host?a=b"},
		},
		{
			name:     "trims whitespace around key and value",
			content:  "  SPACED  =  padded value  \n",
			expected: map[string]string{"SPACED": "padded value"},
		},
		{
			name:     "strips one layer of matching double quotes",
			content:  `MSG="hello world"` + "\n",
			expected: map[string]string{"MSG": "hello world"},
		},
		{
			name:     "strips one layer of matching single quotes",
			content:  "DSN='postgres://x'\n",
			expected: map[string]string{"DSN": "postgres://x"},
		},
		{
			name:     "keeps inner quote layer",
			content:  `NESTED="'quoted'"` + "\n",
			expected: map[string]string{"NESTED": "'quoted'"},
		},
		{
			name:     "leaves mismatched quotes alone",
			content:  `ODD="half'` + "\n",
			expected: map[string]string{"ODD": `"half'`},
		},
		{
			name:     "ignores lines without equals",
			content:  "export PATH\nREAL=yes\n",
			expected: map[string]string{"REAL": "yes"},
		},
		{
			name:     "empty value",
			content:  "EMPTY=\n",
			expected: map[string]string{"EMPTY": ""},
		},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, ".env", tt.content)
			assert.Equal(t, tt.expected, a.parseEnvFile(path))
		})
	}
}

func TestParseEnvFile_MissingFileIsEmpty(t *testing.T) {
	a := newTestAnalyzer()
	result := a.parseEnvFile(filepath.Join(t.TempDir(), ".env"))
	require.NotNil(t, result)
	assert.Empty(t, result)
}
