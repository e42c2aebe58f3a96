package main

import "slices"

// Change reports what a plugin operation did to the list.
type Change int

const (
	Unchanged Change = iota
	Added
	Removed
)

func (c Change) String() string {
	switch c {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// IsEnabled reports whether name occurs at least once in the plugin list.
func IsEnabled(cfg *Config, name string) bool {
	return slices.Index(cfg.Plugins, name) >= 0
}

// Enable appends name to the end of the plugin list unless it is already there.
func Enable(cfg *Config, name string) Change {
	if IsEnabled(cfg, name) {
		return Unchanged
	}
	cfg.Plugins = append(cfg.Plugins, name)
	return Added
}

// Disable removes the first occurrence of name. Later duplicates are left
// alone.
func Disable(cfg *Config, name string) Change {
	i := slices.Index(cfg.Plugins, name)
	if i < 0 {
		return Unchanged
	}
	cfg.Plugins = append(cfg.Plugins[:i:i], cfg.Plugins[i+1:]...)
	return Removed
}

// Toggle disables name if it is enabled, and enables it otherwise.
func Toggle(cfg *Config, name string) Change {
	if IsEnabled(cfg, name) {
		return Disable(cfg, name)
	}
	return Enable(cfg, name)
}
