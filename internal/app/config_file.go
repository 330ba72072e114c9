package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to the flag names.
type FileConfig struct {
	PDF        string `yaml:"pdf" json:"pdf"`
	TargetYear string `yaml:"targetYear" json:"targetYear"`
	Label      string `yaml:"label" json:"label"`

	AWS struct {
		Region string `yaml:"region" json:"region"`
	} `yaml:"aws" json:"aws"`

	Blocks struct {
		File string `yaml:"file" json:"file"`
	} `yaml:"blocks" json:"blocks"`

	Cache struct {
		Dir    string        `yaml:"dir" json:"dir"`
		MaxAge time.Duration `yaml:"maxAge" json:"maxAge"`
		Clear  bool          `yaml:"clear" json:"clear"`
	} `yaml:"cache" json:"cache"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset or still at their flag default. Flags should
// already have been parsed; this lets file config supply defaults while
// preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	const cacheDirDefault = ".statext-cache"

	if cfg.PDFPath == "" && fc.PDF != "" {
		cfg.PDFPath = fc.PDF
	}
	if cfg.TargetYear == "" && fc.TargetYear != "" {
		cfg.TargetYear = fc.TargetYear
	}
	if cfg.Label == "" && fc.Label != "" {
		cfg.Label = fc.Label
	}
	if cfg.AWSRegion == "" && fc.AWS.Region != "" {
		cfg.AWSRegion = fc.AWS.Region
	}
	if cfg.BlocksFile == "" && fc.Blocks.File != "" {
		cfg.BlocksFile = fc.Blocks.File
	}
	if (cfg.CacheDir == "" || cfg.CacheDir == cacheDirDefault) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
// When a saved blocks file is replayed, the document path may be omitted.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.PDFPath) == "" && strings.TrimSpace(cfg.BlocksFile) == "" {
		return errors.New("config: pdf path is required (or set blocks.file)")
	}
	if cfg.CacheMaxAge < 0 {
		return errors.New("config: negative cache.maxAge is not allowed")
	}
	return nil
}
