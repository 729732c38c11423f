package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"suiterun/internal/config"
	"suiterun/internal/discovery"
	"suiterun/internal/domain"
	"suiterun/internal/registry"
)

// SuiteLoader builds the registry: built-in suites first, then declarative
// suite files in lexical path order.
type SuiteLoader struct {
	config  *config.Config
	parser  *discovery.Parser
	builtin func() *registry.Registry
	logger  logrus.FieldLogger
}

// NewSuiteLoader creates a new SuiteLoader
func NewSuiteLoader(cfg *config.Config, parser *discovery.Parser, builtin func() *registry.Registry, logger logrus.FieldLogger) *SuiteLoader {
	return &SuiteLoader{
		config:  cfg,
		parser:  parser,
		builtin: builtin,
		logger:  logger,
	}
}

// Load returns every registered suite
func (l *SuiteLoader) Load() ([]*domain.Suite, error) {
	reg := l.builtin()

	dir := l.config.GetSuitesPath()
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) && !l.config.SuitesDirExplicit() {
		l.logger.WithField("dir", dir).Debug("no suites directory, using built-in suites")
		return reg.Suites(), nil
	}

	scanner := discovery.NewScanner(l.config.PathsToIgnore)
	files, err := scanner.Scan(dir)
	if err != nil {
		return nil, err
	}

	suites, err := l.parser.ParseFiles(files)
	if err != nil {
		return nil, fmt.Errorf("load suites: %w", err)
	}
	reg.Register(suites...)

	l.logger.WithFields(logrus.Fields{
		"dir":    dir,
		"files":  len(files),
		"suites": reg.Len(),
	}).Debug("suites loaded")

	return reg.Suites(), nil
}
