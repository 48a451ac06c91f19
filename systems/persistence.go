package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/timetravel/config"
	"github.com/automoto/timetravel/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const bindingsKey = "bindings"

// SavedBindings maps action names to key names, e.g. {"fire": ["F"]}.
type SavedBindings map[string][]string

var gdataManager *gdata.Manager

// InitPersistence opens the settings store.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "timetravel",
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadBindings reads saved key bindings. A missing store or save returns nil.
func LoadBindings() (SavedBindings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(bindingsKey)
	if err != nil {
		return nil, fmt.Errorf("load bindings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedBindings
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse bindings: %w", err)
	}
	return saved, nil
}

// SaveBindings writes the current key bindings.
func SaveBindings(bindings map[cfg.ActionID]cfg.InputBinding) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(EncodeBindings(bindings))
	if err != nil {
		return fmt.Errorf("encode bindings: %w", err)
	}
	if err := gdataManager.SaveItem(bindingsKey, data); err != nil {
		return fmt.Errorf("save bindings: %w", err)
	}
	return nil
}

// EncodeBindings converts the keyboard part of bindings to SavedBindings.
func EncodeBindings(bindings map[cfg.ActionID]cfg.InputBinding) SavedBindings {
	saved := SavedBindings{}
	for id, b := range bindings {
		name, ok := cfg.ActionNames[id]
		if !ok {
			continue
		}
		for _, k := range b.Keys {
			text, err := k.MarshalText()
			if err != nil {
				continue
			}
			saved[name] = append(saved[name], string(text))
		}
	}
	return saved
}

// ApplyBindings overrides the keys of base with saved ones. Unknown actions
// and key names are skipped with a warning; gamepad buttons are kept.
func ApplyBindings(base map[cfg.ActionID]cfg.InputBinding, saved SavedBindings) map[cfg.ActionID]cfg.InputBinding {
	out := make(map[cfg.ActionID]cfg.InputBinding, len(base))
	for id, b := range base {
		out[id] = b
	}

	byName := make(map[string]cfg.ActionID, len(cfg.ActionNames))
	for id, name := range cfg.ActionNames {
		byName[name] = id
	}

	for name, keyNames := range saved {
		id, ok := byName[name]
		if !ok {
			logger.Log.WithField("action", name).Warn("ignoring binding for unknown action")
			continue
		}

		var keys []ebiten.Key
		for _, kn := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				logger.Log.WithField("key", kn).Warn("ignoring unknown key name")
				continue
			}
			keys = append(keys, k)
		}
		if len(keys) == 0 {
			continue
		}

		b := out[id]
		b.Keys = keys
		out[id] = b
	}
	return out
}
