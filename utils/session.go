// utils/session.go
package utils

import (
	"encoding/json"
	"errors"
	"os"

	"solonest-backend/models"
)

const DefaultProfession = "Business Professional"

// SessionStore keeps the login blob in a single JSON file. It stands in
// for the browser's local storage: it is the only state that survives a
// restart, it holds no token and it never expires.
type SessionStore struct {
	Path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{Path: path}
}

// Save writes the profile blob, replacing whatever was there.
func (s *SessionStore) Save(profile models.UserProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// Load reads the profile back. The second return is false when nobody
// is logged in. Older blobs written without a profession get one filled
// in and re-saved, the same backfill the user menu does.
func (s *SessionStore) Load() (models.UserProfile, bool, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.UserProfile{}, false, nil
		}
		return models.UserProfile{}, false, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return models.UserProfile{}, false, err
	}

	if profile.Profession == "" {
		profile.Profession = DefaultProfession
		if err := s.Save(profile); err != nil {
			return profile, true, err
		}
	}
	return profile, true, nil
}

// Clear logs out by removing the blob. Clearing an absent blob is fine.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
