// Package credentials stores provider API keys in an encrypted file
// under the user config directory.
package credentials

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"

	"github.com/genesis-engine/genesis-backend/core/errors"
)

// DefaultProfile is the profile used when none is selected.
const DefaultProfile = "default"

// Store is an AES-GCM encrypted credential file. The encryption key is
// derived from the machine identity, so the file is unreadable when
// copied to another host.
type Store struct {
	path string
	key  []byte
	mu   sync.RWMutex
}

type storeData struct {
	Profiles map[string]map[string]string `json:"profiles"`
}

// NewStore opens (or prepares) the credential store in dir. The
// directory and salt file are created on first use.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	key, err := deriveEncryptionKey(dir)
	if err != nil {
		return nil, err
	}

	return &Store{
		path: filepath.Join(dir, "credentials.enc"),
		key:  key,
	}, nil
}

// Get returns the secret stored for profile/provider.
func (s *Store) Get(profile, provider string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.load()
	if err != nil {
		return "", err
	}

	if secrets, ok := data.Profiles[profile]; ok {
		if secret, ok := secrets[provider]; ok {
			return secret, nil
		}
	}

	return "", fmt.Errorf("credential %s/%s: %w", profile, provider, errors.ErrNotFound)
}

// Set stores a secret for profile/provider.
func (s *Store) Set(profile, provider, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	if data.Profiles[profile] == nil {
		data.Profiles[profile] = make(map[string]string)
	}
	data.Profiles[profile][provider] = secret

	return s.save(data)
}

// Delete removes the secret for profile/provider. Deleting an absent
// entry is not an error.
func (s *Store) Delete(profile, provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	if secrets, ok := data.Profiles[profile]; ok {
		delete(secrets, provider)
	}

	return s.save(data)
}

// ListKeys returns the provider names stored under a profile, sorted.
func (s *Store) ListKeys(profile string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	var keys []string
	for k := range data.Profiles[profile] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys, nil
}

// ResolveSecret returns the stored secret for profile/provider, falling
// back to the <PROVIDER>_API_KEY environment variable.
func (s *Store) ResolveSecret(profile, provider string) (string, error) {
	secret, err := s.Get(profile, provider)
	if err == nil {
		return secret, nil
	}

	if env := os.Getenv(EnvKeyName(provider)); env != "" {
		return env, nil
	}

	return "", err
}

// EnvKeyName returns the environment variable consulted for a provider
// when no credential is stored, e.g. CLAUDE_API_KEY.
func EnvKeyName(provider string) string {
	return strings.ToUpper(provider) + "_API_KEY"
}

func (s *Store) load() (*storeData, error) {
	encrypted, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &storeData{Profiles: make(map[string]map[string]string)}, nil
	}
	if err != nil {
		return nil, err
	}

	plaintext, err := s.decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if data.Profiles == nil {
		data.Profiles = make(map[string]map[string]string)
	}

	return &data, nil
}

func (s *Store) save(data *storeData) error {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return err
	}

	encrypted, err := s.encrypt(plaintext)
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, encrypted, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *Store) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *Store) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func deriveEncryptionKey(dir string) ([]byte, error) {
	saltPath := filepath.Join(dir, ".salt")
	salt, err := getOrCreateSalt(saltPath)
	if err != nil {
		return nil, err
	}

	machineID := getMachineIdentifier()
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}

	input := machineID + username
	key := argon2.IDKey([]byte(input), salt, 1, 64*1024, 4, 32)

	return key, nil
}

func getOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil && len(salt) == 32 {
		return salt, nil
	}

	salt = make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, salt, 0600); err != nil {
		return nil, err
	}

	return salt, nil
}

func getMachineIdentifier() string {
	sources := []string{
		"/etc/machine-id",
		"/var/lib/dbus/machine-id",
	}

	for _, path := range sources {
		if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
			return string(data)
		}
	}

	hostname, _ := os.Hostname()
	homeDir := os.Getenv("HOME")
	combined := hostname + homeDir + os.Getenv("USER")
	hash := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(hash[:])
}
