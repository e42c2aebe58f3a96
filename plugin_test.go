package main

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newConfig(plugins ...string) *Config {
	return &Config{Plugins: plugins}
}

func TestEnable(t *testing.T) {
	t.Run("Appends to the end", func(t *testing.T) {
		cfg := newConfig("a", "b")
		assert.Equal(t, Added, Enable(cfg, "x"))
		assert.Equal(t, []string{"a", "b", "x"}, cfg.Plugins)
	})

	t.Run("Is idempotent", func(t *testing.T) {
		cfg := newConfig("a")
		Enable(cfg, "x")
		before := slices.Clone(cfg.Plugins)

		assert.Equal(t, Unchanged, Enable(cfg, "x"))
		assert.Equal(t, before, cfg.Plugins)
	})

	t.Run("Works on a nil list", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, Added, Enable(cfg, "x"))
		assert.Equal(t, []string{"x"}, cfg.Plugins)
	})
}

func TestDisable(t *testing.T) {
	t.Run("Removes entry", func(t *testing.T) {
		cfg := newConfig("x", "y")
		assert.Equal(t, Removed, Disable(cfg, "x"))
		assert.Equal(t, []string{"y"}, cfg.Plugins)
	})

	t.Run("Absent entry is unchanged", func(t *testing.T) {
		cfg := newConfig("y")
		assert.Equal(t, Unchanged, Disable(cfg, "x"))
		assert.Equal(t, []string{"y"}, cfg.Plugins)
	})

	t.Run("Is idempotent", func(t *testing.T) {
		cfg := newConfig("a", "x", "b")
		Disable(cfg, "x")
		before := slices.Clone(cfg.Plugins)

		assert.Equal(t, Unchanged, Disable(cfg, "x"))
		assert.Equal(t, before, cfg.Plugins)
	})

	t.Run("Removes only the first duplicate", func(t *testing.T) {
		cfg := newConfig("x", "a", "x")
		assert.Equal(t, Removed, Disable(cfg, "x"))
		assert.Equal(t, []string{"a", "x"}, cfg.Plugins)
		assert.True(t, IsEnabled(cfg, "x"))
	})

	t.Run("Does not touch the caller's backing array", func(t *testing.T) {
		plugins := []string{"a", "x", "b"}
		cfg := newConfig(plugins...)
		Disable(cfg, "x")
		assert.Equal(t, []string{"a", "x", "b"}, plugins)
	})
}

func TestToggle(t *testing.T) {
	lists := [][]string{
		nil,
		{"x"},
		{"a", "b"},
		{"a", "x", "b"},
		{"x", "a"},
	}
	for _, list := range lists {
		cfg := newConfig(slices.Clone(list)...)
		wasEnabled := IsEnabled(cfg, "x")

		first := Toggle(cfg, "x")
		assert.NotEqual(t, Unchanged, first)
		assert.Equal(t, !wasEnabled, IsEnabled(cfg, "x"))

		Toggle(cfg, "x")
		if wasEnabled {
			// Disable then enable moves the entry to the end.
			assert.ElementsMatch(t, list, cfg.Plugins)
			assert.Equal(t, "x", cfg.Plugins[len(cfg.Plugins)-1])
		} else {
			assert.Equal(t, len(list), len(cfg.Plugins))
			assert.True(t, slices.Equal(list, cfg.Plugins))
		}
	}
}

func TestChangeString(t *testing.T) {
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "unchanged", Unchanged.String())
}
