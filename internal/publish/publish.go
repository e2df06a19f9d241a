package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// PersistenceError is a failed write to the destination: the previous
// document is left untouched and the caller may simply retry.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not persist package to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Publisher writes the assembled document wholesale to its well-known
// path under the Home Assistant config dir.
type Publisher struct {
	logger    *log.Logger
	configDir string
}

func NewPublisher(logger *log.Logger, configDir string) *Publisher {
	return &Publisher{logger: logger, configDir: configDir}
}

// EnsurePackagesEnabled verifies the Home Assistant installation loads
// packages at all; without it the generated document would silently be
// ignored.
func (p *Publisher) EnsurePackagesEnabled() error {
	configurationYaml := filepath.Join(p.configDir, "configuration.yaml")

	text, err := os.ReadFile(configurationYaml)
	if err != nil {
		return &PersistenceError{Path: configurationYaml, Err: fmt.Errorf("configuration.yaml not found in %s: %w", p.configDir, err)}
	}
	if !strings.Contains(string(text), "packages:") {
		return &PersistenceError{Path: configurationYaml, Err: fmt.Errorf("Home Assistant packages are not enabled in configuration.yaml")}
	}
	return nil
}

// Write replaces the document at relPath atomically: the content goes
// to a temp file in the destination dir first, then renames into
// place, so a reader never observes a partial document.
func (p *Publisher) Write(relPath string, doc []byte) (string, error) {
	outPath := filepath.Join(p.configDir, relPath)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", &PersistenceError{Path: outPath, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".lume-*.yaml")
	if err != nil {
		return "", &PersistenceError{Path: outPath, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &PersistenceError{Path: outPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &PersistenceError{Path: outPath, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", &PersistenceError{Path: outPath, Err: err}
	}

	if err := os.Rename(tmpName, outPath); err != nil {
		os.Remove(tmpName)
		return "", &PersistenceError{Path: outPath, Err: err}
	}

	p.logger.Info("wrote package document", "path", outPath, "bytes", len(doc))
	return outPath, nil
}
