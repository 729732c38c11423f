package discovery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"suiterun/internal/check"
	"suiterun/internal/domain"
)

// SuiteFile is the YAML layout of a declarative suite
type SuiteFile struct {
	Suite string     `yaml:"suite"`
	Cases []CaseFile `yaml:"cases"`
}

// CaseFile is one case of a declarative suite
type CaseFile struct {
	Name  string     `yaml:"name"`
	Tests []TestFile `yaml:"tests"`
}

// TestFile is a single literal assertion
type TestFile struct {
	Name    string `yaml:"name"`
	Expect  *bool  `yaml:"expect"`
	Message string `yaml:"message,omitempty"`
}

// Parser turns suite files into registered suites
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses one suite file
func (p *Parser) ParseFile(filePath string) (*domain.Suite, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	suite, err := p.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return suite, nil
}

// ParseFiles parses every file, stopping at the first error
func (p *Parser) ParseFiles(paths []string) ([]*domain.Suite, error) {
	suites := make([]*domain.Suite, 0, len(paths))
	for _, path := range paths {
		s, err := p.ParseFile(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// Parse decodes a suite document; unknown fields are rejected
func (p *Parser) Parse(content []byte) (*domain.Suite, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var file SuiteFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidSuiteFile)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSuiteFile, err)
	}

	if err := file.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSuiteFile, err)
	}

	return file.build(), nil
}

func (f *SuiteFile) validate() error {
	if f.Suite == "" {
		return errors.New("suite name is required")
	}
	for i, c := range f.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: name is required", i)
		}
		for j, t := range c.Tests {
			if t.Name == "" {
				return fmt.Errorf("case %q test %d: name is required", c.Name, j)
			}
			if t.Expect == nil {
				return fmt.Errorf("case %q test %q: expect is required", c.Name, t.Name)
			}
		}
	}
	return nil
}

func (f *SuiteFile) build() *domain.Suite {
	suite := domain.NewSuite(f.Suite)
	for _, cf := range f.Cases {
		tc := domain.NewCase(cf.Name)
		for _, tf := range cf.Tests {
			tc.AddTest(tf.Name, literalAssertion(*tf.Expect, tf.Message))
		}
		suite.AddCase(tc)
	}
	return suite
}

func literalAssertion(expect bool, message string) domain.TestFunc {
	return func(t *check.T) {
		if message == "" {
			t.True(expect)
			return
		}
		t.True(expect, message)
	}
}
