package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"hyperfour/game/engine"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Preset names a board shape. The last dimension is the drop axis.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Dimensions  []int  `json:"dimensions"`
}

// Validate checks that the preset describes a playable board.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}
	if len(p.Dimensions) < engine.MinDimensions {
		return fmt.Errorf("%w: %q needs at least %d dimensions, got %d",
			ErrInvalidPreset, p.Name, engine.MinDimensions, len(p.Dimensions))
	}
	for i, size := range p.Dimensions {
		if size < 1 {
			return fmt.Errorf("%w: %q dimension %d must be positive, got %d",
				ErrInvalidPreset, p.Name, i, size)
		}
	}
	return nil
}

// Manager handles board-preset loading and caching. Built-in presets are
// always available; files in the config directory are loaded on demand and
// shadow built-ins of the same name.
type Manager struct {
	configDir string
	presets   map[string]*Preset
	mu        sync.RWMutex
}

// builtinPresets returns the presets shipped with the game. The hyper
// shape is the 4-D board the game was originally designed around.
func builtinPresets() map[string]*Preset {
	presets := []*Preset{
		{Name: "classic", Description: "The traditional 7x6 board", Dimensions: []int{7, 6}},
		{Name: "cube", Description: "A 4x4x4 cube", Dimensions: []int{4, 4, 4}},
		{Name: "hyper", Description: "A 6x7x4x4 four-dimensional board", Dimensions: []int{6, 7, 4, 4}},
	}
	m := make(map[string]*Preset, len(presets))
	for _, p := range presets {
		m[p.Name] = p
	}
	return m
}

// NewManager creates a preset manager. The config directory is optional;
// an empty or missing directory leaves only the built-in presets.
func NewManager(configDir string) *Manager {
	return &Manager{
		configDir: configDir,
		presets:   builtinPresets(),
	}
}

// Load returns the preset with the given name, reading it from the config
// directory if it is not cached.
func (m *Manager) Load(name string) (*Preset, error) {
	m.mu.RLock()
	if preset, exists := m.presets[name]; exists {
		m.mu.RUnlock()
		return preset, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock.
	if preset, exists := m.presets[name]; exists {
		return preset, nil
	}

	if m.configDir == "" {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
		}
		return nil, fmt.Errorf("failed to read preset %s: %w", name, err)
	}

	preset, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load preset %s: %w", name, err)
	}

	m.presets[name] = preset
	return preset, nil
}

// Default returns the preset used when the caller names none.
func (m *Manager) Default() *Preset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.presets["classic"]
}

// List returns every available preset: built-ins, cached loads, and
// whatever JSON files the config directory holds, sorted by name.
func (m *Manager) List() ([]*Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configDir != "" {
		files, err := filepath.Glob(filepath.Join(m.configDir, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to scan config directory: %w", err)
		}
		for _, file := range files {
			name := strings.TrimSuffix(filepath.Base(file), ".json")
			if _, cached := m.presets[name]; cached {
				continue
			}
			data, err := os.ReadFile(file)
			if err != nil {
				continue
			}
			preset, err := ParsePreset(data)
			if err != nil {
				// Broken files are skipped here; the validate command
				// reports them.
				continue
			}
			m.presets[name] = preset
		}
	}

	presets := make([]*Preset, 0, len(m.presets))
	for _, preset := range m.presets {
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// ParsePreset decodes and validates a single preset document.
func ParsePreset(data []byte) (*Preset, error) {
	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	return &preset, nil
}
