package store

import "encoding/json"

// ThemeKey is the record key for the persisted theme preference.
const ThemeKey = "theme"

// DefaultTheme is used when no theme record exists or it cannot be decoded.
const DefaultTheme = "light"

type themeRecord struct {
	Mode string `json:"mode"`
}

// LoadTheme returns the persisted theme mode ("light" or "dark"). A missing,
// unreadable, or malformed record falls back to the default; theme loading
// never blocks the app.
func (s *Store) LoadTheme() string {
	raw, ok, err := s.Get(ThemeKey)
	if err != nil || !ok {
		return DefaultTheme
	}
	var rec themeRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return DefaultTheme
	}
	switch rec.Mode {
	case "light", "dark":
		return rec.Mode
	}
	return DefaultTheme
}

// SaveTheme persists the theme mode.
func (s *Store) SaveTheme(mode string) error {
	raw, err := json.Marshal(themeRecord{Mode: mode})
	if err != nil {
		return err
	}
	return s.Put(ThemeKey, raw)
}
