package willowfx

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MotionSettings holds the user's motion preferences.
type MotionSettings struct {
	// ReduceMotion mounts every entrance in its final state, exactly as if
	// Animate were false.
	ReduceMotion bool `yaml:"reduceMotion"`
	// SpeedScale multiplies the dt fed to entrance drives. 0 means 1.
	SpeedScale float64 `yaml:"speedScale"`
}

// DefaultMotionSettings returns full motion at normal speed.
func DefaultMotionSettings() MotionSettings {
	return MotionSettings{SpeedScale: 1}
}

func (m MotionSettings) speed() float64 {
	if m.SpeedScale <= 0 {
		return 1
	}
	return m.SpeedScale
}

const (
	settingsObject   = "motion"
	settingsProperty = "settings"
)

// SettingsStore loads and saves MotionSettings through gdata. A nil manager
// gives a memory-only store whose Save is a no-op.
type SettingsStore struct {
	manager  *gdata.Manager
	settings MotionSettings
}

// NewSettingsStore creates a store and loads any saved settings. A failed
// load is logged and leaves the defaults in place.
func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	st := &SettingsStore{manager: manager, settings: DefaultMotionSettings()}
	if err := st.Load(); err != nil {
		log.Printf("[willowfx] motion settings: %v (using defaults)", err)
	}
	return st
}

// Load reads the saved settings. Missing data resets to the defaults without
// error.
func (st *SettingsStore) Load() error {
	st.settings = DefaultMotionSettings()
	if st.manager == nil || !st.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := st.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	var loaded MotionSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	st.settings = loaded
	return nil
}

// Save writes the current settings. No-op for a memory-only store.
func (st *SettingsStore) Save() error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := st.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Settings returns the current settings.
func (st *SettingsStore) Settings() MotionSettings {
	return st.settings
}

// SetReduceMotion updates the in-memory preference; call Save to persist it.
func (st *SettingsStore) SetReduceMotion(reduce bool) {
	st.settings.ReduceMotion = reduce
}

// SetSpeedScale updates the in-memory drive speed; values <= 0 mean normal
// speed. Call Save to persist it.
func (st *SettingsStore) SetSpeedScale(scale float64) {
	st.settings.SpeedScale = scale
}

// Apply pushes the current settings onto scene.
func (st *SettingsStore) Apply(scene *Scene) {
	scene.SetMotionSettings(st.settings)
}
