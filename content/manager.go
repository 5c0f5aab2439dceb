// Package content loads the static room copy: titles, cards, tones and colors.
// Defaults are embedded; YAML files in a content directory override them field by field.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

//go:embed rooms.yaml
var defaultRooms []byte

const (
	MaxLineLength = 96 // loader lines wider than this are cut
	MaxSkillLevel = 100
)

var (
	// ErrInvalid is wrapped by every validation failure
	ErrInvalid = errors.New("invalid content")

	// CommentPrefixes mark loader script lines that are skipped
	CommentPrefixes = []string{"#"}
)

// Manager discovers override files and decodes them over the embedded defaults
type Manager struct {
	dataDir string
	files   []string
}

// NewManager creates a manager reading overrides from dataDir; empty means none
func NewManager(dataDir string) *Manager {
	return &Manager{dataDir: dataDir}
}

// Discover scans the content directory for .yaml and .yml files
// A missing directory is not an error; hidden files are skipped
func (m *Manager) Discover() error {
	m.files = m.files[:0]
	if m.dataDir == "" {
		return nil
	}
	if _, err := os.Stat(m.dataDir); os.IsNotExist(err) {
		log.Printf("Content directory '%s' does not exist, using embedded rooms", m.dataDir)
		return nil
	}

	entries, err := os.ReadDir(m.dataDir)
	if err != nil {
		return fmt.Errorf("failed to read content directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			log.Printf("Skipping hidden file: %s", name)
			continue
		}
		if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
			m.files = append(m.files, filepath.Join(m.dataDir, name))
		}
	}

	log.Printf("Discovered %d content override(s) in %s", len(m.files), m.dataDir)
	return nil
}

// Files returns the discovered override files in directory order
func (m *Manager) Files() []string {
	return m.files
}

// Load decodes the embedded rooms, then every override in order, then validates
func (m *Manager) Load() (*Content, error) {
	c, err := decode(defaultRooms, &Content{})
	if err != nil {
		return nil, fmt.Errorf("embedded rooms: %w", err)
	}

	for _, path := range m.files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if c, err = decode(data, c); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Printf("Applied content override %s", path)
	}

	for name, script := range c.Loading.Scripts {
		script.Lines = ProcessLines(script.Lines)
		c.Loading.Scripts[name] = script
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load is the one-call form used by the app: discover overrides in dataDir and load
func Load(dataDir string) (*Content, error) {
	m := NewManager(dataDir)
	if err := m.Discover(); err != nil {
		return nil, err
	}
	return m.Load()
}

// Default returns the embedded rooms; they are validated by tests so failure is a build defect
func Default() *Content {
	c, err := NewManager("").Load()
	if err != nil {
		panic(fmt.Sprintf("embedded rooms: %v", err))
	}
	return c
}

// decode applies a YAML document onto c; unknown keys are rejected
func decode(data []byte, c *Content) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return c, nil
}

// isCommentLine checks if a line starts with any comment prefix
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// ProcessLines trims script lines, drops blank and comment lines and cuts lines wider than MaxLineLength
func ProcessLines(lines []string) []string {
	processed := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isCommentLine(trimmed) {
			continue
		}
		if runewidth.StringWidth(trimmed) > MaxLineLength {
			trimmed = runewidth.Truncate(trimmed, MaxLineLength, "")
		}
		processed = append(processed, trimmed)
	}
	return processed
}

// Validate checks the invariants the renderers and sequences depend on
func (c *Content) Validate() error {
	script, ok := c.Loading.Scripts[c.Loading.Script]
	if !ok {
		return fmt.Errorf("%w: loading script %q not defined", ErrInvalid, c.Loading.Script)
	}
	if len(script.Lines) == 0 {
		return fmt.Errorf("%w: loading script %q has no lines", ErrInvalid, c.Loading.Script)
	}
	if c.Owner == "" || c.Host == "" {
		return fmt.Errorf("%w: owner and host are required", ErrInvalid)
	}
	if len(c.Chaos.Generator.Thoughts) == 0 {
		return fmt.Errorf("%w: chaos generator needs at least one thought", ErrInvalid)
	}
	if len(c.Synapse.Prompts) != 3 {
		return fmt.Errorf("%w: synapse needs one prompt per form field, got %d", ErrInvalid, len(c.Synapse.Prompts))
	}
	for _, p := range c.Skills.Panels {
		for _, s := range p.Skills {
			if s.Level < 0 || s.Level > MaxSkillLevel {
				return fmt.Errorf("%w: skill %q level %d out of range", ErrInvalid, s.Name, s.Level)
			}
		}
	}
	for _, p := range c.Projects.Items {
		if _, ok := c.Projects.StatusColors[p.Status]; !ok {
			return fmt.Errorf("%w: project %q has unknown status %q", ErrInvalid, p.Title, p.Status)
		}
	}
	return nil
}

// Prompt returns the terminal header, e.g. shivanshi@galaxy-brain:
func (c *Content) Prompt() string {
	return c.Owner + "@" + c.Host + ":"
}
