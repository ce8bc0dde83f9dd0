package model

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v2"
)

// ErrDigestMismatch means the model file's content does not match its
// recorded digest, usually a truncated or hand-edited file.
var ErrDigestMismatch = errors.New("model digest mismatch")

// envelope is the on-disk form: the serialised model plus a digest of it.
type envelope struct {
	Digest string `yaml:"digest"`
	Model  Model  `yaml:"model"`
}

// Store persists one model as YAML at a fixed path. Writes take a sibling
// .lock file so concurrent tool runs cannot interleave partial writes;
// content integrity is checked on load via a BLAKE2b digest.
type Store struct {
	Path string
}

// Save writes m to the store's path.
func (s *Store) Save(m *Model) error {
	lock := flock.New(s.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock model %s: %w", s.Path, err)
	}
	defer lock.Unlock()

	body, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	env := envelope{Digest: digest(body), Model: *m}
	raw, err := yaml.Marshal(&env)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.Path, raw, 0o644)
}

// Load reads and verifies the stored model.
func (s *Store) Load() (*Model, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", s.Path, err)
	}
	var env envelope
	if err := yaml.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", s.Path, err)
	}
	body, err := yaml.Marshal(&env.Model)
	if err != nil {
		return nil, err
	}
	if digest(body) != env.Digest {
		return nil, fmt.Errorf("%s: %w", s.Path, ErrDigestMismatch)
	}
	return &env.Model, nil
}

func digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// writeFileAtomic writes via a temp file, then atomically replaces the
// target.
func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
