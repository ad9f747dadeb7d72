package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Version of the uprov tool.
const Version = "0.3.0"

// Backends selectable in the config or on the command line.
const (
	BackendExec  = "exec"
	BackendFiles = "files"

	defaultBackend = BackendExec
)

type Config struct {
	UpdatedAt time.Time `yaml:"updated_at"`
	// Backend selects the account-creation primitive: "exec" drives
	// useradd(8), "files" edits the account databases directly.
	Backend      string `yaml:"backend"`
	DefaultShell string `yaml:"default_shell,omitempty"`
	// HostRoot remaps all host paths; "/" operates on the local system.
	HostRoot string `yaml:"host_root,omitempty"`
	LogDir   string `yaml:"log_dir,omitempty"`
}

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func DefaultPath() string {
	return filepath.Join("/etc/uprov", "config.yaml")
}

func (s *Store) Ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = os.MkdirAll(filepath.Dir(s.path), 0755)

	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			_ = s.saveLocked(Config{UpdatedAt: time.Now().UTC(), Backend: defaultBackend})
		}
	}
	return nil
}

func (s *Store) Get() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked()
}

func (s *Store) SetBackend(backend string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if backend != BackendExec && backend != BackendFiles {
		return errors.New("invalid backend")
	}

	cfg, _ := s.getLocked()
	cfg.Backend = backend
	cfg.UpdatedAt = time.Now().UTC()
	return s.saveLocked(cfg)
}

func (s *Store) getLocked() (Config, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{Backend: defaultBackend}, nil
		}
		return Config{}, err
	}
	if len(b) == 0 {
		return Config{Backend: defaultBackend}, nil
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Backend == "" {
		cfg.Backend = defaultBackend
	}
	return cfg, nil
}

func (s *Store) saveLocked(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
