package config

import (
	"fyne.io/fyne/v2"
)

// PreferenceStore exposes Fyne preferences as the key-value store the image
// vault persists into. Fyne preferences never report errors, so every
// method returns nil; the error results exist for stores that can fail.
type PreferenceStore struct {
	prefs fyne.Preferences
}

// NewPreferenceStore creates a store over the given preferences
func NewPreferenceStore(prefs fyne.Preferences) *PreferenceStore {
	return &PreferenceStore{prefs: prefs}
}

// Get returns the value for key and whether it was set
func (s *PreferenceStore) Get(key string) (string, bool, error) {
	value := s.prefs.String(key)
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// Set stores value under key
func (s *PreferenceStore) Set(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}

// Remove deletes key
func (s *PreferenceStore) Remove(key string) error {
	s.prefs.RemoveValue(key)
	return nil
}
