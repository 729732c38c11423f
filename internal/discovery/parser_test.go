package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suiterun/internal/check"
	"suiterun/internal/domain"
)

const smokeSuite = `suite: Smoke
cases:
  - name: Core
    tests:
      - name: literal_true
        expect: true
      - name: literal_false
        expect: false
        message: deliberately failing
  - name: Empty
`

func TestParser_ParseFile(t *testing.T) {
	parser := NewParser()

	tmpDir := t.TempDir()
	suiteFile := filepath.Join(tmpDir, "smoke.suite.yaml")
	require.NoError(t, os.WriteFile(suiteFile, []byte(smokeSuite), 0644))

	t.Run("builds suite in declaration order", func(t *testing.T) {
		suite, err := parser.ParseFile(suiteFile)
		require.NoError(t, err)

		assert.Equal(t, "Smoke", suite.Name)
		require.Len(t, suite.Cases, 2)
		assert.Equal(t, "Core", suite.Cases[0].Name)
		assert.Empty(t, suite.Cases[1].Tests)
		require.Len(t, suite.Cases[0].Tests, 2)
		assert.Equal(t, "literal_true", suite.Cases[0].Tests[0].Name)
	})

	t.Run("tests assert their literal", func(t *testing.T) {
		suite, err := parser.ParseFile(suiteFile)
		require.NoError(t, err)

		pass := check.NewT("pass")
		suite.Cases[0].Tests[0].Func(pass)
		assert.Zero(t, pass.Failures())

		fail := check.NewT("fail")
		suite.Cases[0].Tests[1].Func(fail)
		assert.Equal(t, 1, fail.Failures())
		assert.Equal(t, "deliberately failing\nShould be true", fail.Results()[0].Message)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.ParseFile("/non/existent/file.suite.yaml")
		assert.Error(t, err)
	})
}

func TestParser_ParseInvalid(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty document", content: ""},
		{name: "missing suite name", content: "cases: []\n"},
		{name: "missing case name", content: "suite: S\ncases:\n  - tests: []\n"},
		{name: "missing test name", content: "suite: S\ncases:\n  - name: C\n    tests:\n      - expect: true\n"},
		{name: "missing expect", content: "suite: S\ncases:\n  - name: C\n    tests:\n      - name: t\n"},
		{name: "unknown field", content: "suite: S\nretries: 3\n"},
		{name: "malformed yaml", content: "suite: [S\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidSuiteFile)
		})
	}
}

func TestParser_ParseFiles(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	good := filepath.Join(tmpDir, "a.suite.yaml")
	bad := filepath.Join(tmpDir, "b.suite.yaml")
	require.NoError(t, os.WriteFile(good, []byte(smokeSuite), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("cases: []\n"), 0644))

	suites, err := parser.ParseFiles([]string{good})
	require.NoError(t, err)
	assert.Len(t, suites, 1)

	_, err = parser.ParseFiles([]string{good, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.suite.yaml")
}
