package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/sellone/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the store configuration file looked up by default.
const FileName = ".sellone.yaml"

var _ domain.CatalogLoader = (*YAMLLoader)(nil)

// YAMLLoader implements domain.CatalogLoader by reading a YAML store file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the store configuration at path.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(path string) (domain.StoreConfig, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.StoreConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	if cfg.Currency == "" {
		cfg.Currency = domain.CurrencyEUR
	}
	return cfg, nil
}
