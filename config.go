package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

const (
	appNamespace   = "opencode"
	configFilename = "opencode.json"
	pluginKey      = "plugin"

	// PluginName is the entry this tool manages in the plugin list.
	PluginName = "oh-my-opencode"
)

// Config is the opencode config document: the plugin list plus every other
// top-level field kept as raw JSON.
type Config struct {
	Plugins []string
	Extra   map[string]json.RawMessage
}

// UnmarshalJSON requires a JSON object. The plugin field, when present, must
// be an array of strings.
func (c *Config) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("config is not a JSON object")
	}

	var plugins []string
	if raw, ok := fields[pluginKey]; ok {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%q must be an array of strings, got null", pluginKey)
		}
		if err := json.Unmarshal(raw, &plugins); err != nil {
			return fmt.Errorf("%q must be an array of strings: %w", pluginKey, err)
		}
		delete(fields, pluginKey)
	}

	c.Plugins = plugins
	c.Extra = fields
	return nil
}

// MarshalJSON merges the plugin list back into the passthrough fields.
func (c *Config) MarshalJSON() ([]byte, error) {
	fields, err := c.fields()
	if err != nil {
		return nil, err
	}
	return json.MarshalWithOption(fields, json.DisableHTMLEscape())
}

// encode renders the document the way it is stored on disk: two-space indent,
// no HTML escaping and a trailing newline.
func (c *Config) encode() ([]byte, error) {
	fields, err := c.fields()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndentWithOption(fields, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (c *Config) fields() (map[string]json.RawMessage, error) {
	fields := make(map[string]json.RawMessage, len(c.Extra)+1)
	for k, v := range c.Extra {
		fields[k] = v
	}

	plugins := c.Plugins
	if plugins == nil {
		plugins = []string{}
	}
	raw, err := json.Marshal(plugins)
	if err != nil {
		return nil, err
	}
	fields[pluginKey] = raw
	return fields, nil
}

// Locate returns the path of the opencode config file inside the user's
// config directory. An absolute XDG_CONFIG_HOME wins on every platform; a
// relative one is ignored.
func Locate() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if !filepath.IsAbs(dir) {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
		}
	}
	return filepath.Join(dir, appNamespace, configFilename), nil
}

// pendingFile is the part of renameio.PendingFile the store relies on.
type pendingFile interface {
	io.Writer
	Chmod(mode os.FileMode) error
	CloseAtomicallyReplace() error
	Cleanup() error
}

// Store reads and writes the config document at a fixed path.
type Store struct {
	path     string
	tempFile func(dir, path string) (pendingFile, error)
}

func NewStore(path string) *Store {
	return &Store{path: path, tempFile: renameioTempFile}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file is an error; nothing is created.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, s.path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: invalid UTF-8", ErrParse, s.path)
	}

	cfg := &Config{}
	if err := cfg.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, s.path, err)
	}
	// Values that decode but cannot be written back (1e400) would make every
	// later save fail.
	if _, err := cfg.encode(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, s.path, err)
	}

	log.WithFields(log.Fields{"path": s.path, "plugins": len(cfg.Plugins)}).Debug("loaded config")
	return cfg, nil
}

// Save writes cfg as indented JSON to a temp file next to the destination and
// renames it into place, so readers see either the old or the new file.
// Concurrent writers are not coordinated: the last rename wins.
func (s *Store) Save(cfg *Config) error {
	data, err := cfg.encode()
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrWrite, s.path, err)
	}

	dest := s.path
	if resolved, err := filepath.EvalSymlinks(dest); err == nil {
		dest = resolved
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(dest); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := s.tempFile(filepath.Dir(dest), dest)
	if err != nil {
		return fmt.Errorf("%w: create temp file for %s: %w", ErrWrite, dest, err)
	}
	defer tmp.Cleanup()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("%w: write temp file for %s: %w", ErrWrite, dest, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: chmod temp file for %s: %w", ErrWrite, dest, err)
	}
	if err := tmp.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrWrite, dest, err)
	}

	log.WithFields(log.Fields{"path": dest, "bytes": len(data)}).Debug("saved config")
	return nil
}
