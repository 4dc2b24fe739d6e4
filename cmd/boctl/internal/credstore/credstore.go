package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-backoffice"
)

const credentialsFile = "credentials.json"

// credentials is the on-disk shape
type credentials struct {
	Token string `json:"token"`
}

// FileStore persists the session token as a JSON file under the user's
// home directory so sessions survive between CLI runs.
type FileStore struct {
	path string
}

var _ backoffice.CredentialStore = (*FileStore)(nil)

// NewFileStore returns a FileStore rooted at ~/.backoffice
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("unable to resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".backoffice")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("unable to create %s: %w", dir, err)
	}

	return &FileStore{path: filepath.Join(dir, credentialsFile)}, nil
}

// NewFileStoreAt returns a FileStore over an explicit file path
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) SaveToken(token string) error {
	data, err := json.MarshalIndent(credentials{Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode credentials: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// LoadToken reads the persisted token. A missing file is not an error, it
// just means no session.
func (s *FileStore) LoadToken() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("unable to read credentials file: %w", err)
	}

	creds := credentials{}
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("unable to decode credentials file: %w", err)
	}

	return creds.Token, nil
}

func (s *FileStore) DeleteToken() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}
