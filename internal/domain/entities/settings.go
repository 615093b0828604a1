package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigPathEnv overrides the configuration file lookup.
const ConfigPathEnv = "DEVMANAGER_CONFIG"

const (
	defaultRegistryURL         = "https://registry.npmjs.org"
	defaultRegistryTimeout     = 15 * time.Second
	defaultRegistryRetries     = 3
	defaultRegistryConcurrency = 8
	defaultRegistryCacheSize   = 1024
	defaultScanConcurrency     = 4
	defaultProbeTimeout        = 2 * time.Second
	defaultShell               = "bash"
)

// Settings is the application configuration.
type Settings struct {
	Workspaces []string         `yaml:"workspaces"`
	Registry   RegistrySettings `yaml:"registry"`
	Scan       ScanSettings     `yaml:"scan"`
	Terminal   TerminalSettings `yaml:"terminal"`
}

// RegistrySettings configures the package registry client.
type RegistrySettings struct {
	URL         string        `yaml:"url"`
	Token       string        `yaml:"token"` // Inline, ${ENV_VAR}, or file path
	Timeout     time.Duration `yaml:"timeout"`
	Retries     int           `yaml:"retries"`
	Concurrency int           `yaml:"concurrency"`
	CacheSize   int           `yaml:"cache_size"`
}

// ScanSettings configures workspace scanning and package manager detection.
type ScanSettings struct {
	Concurrency  int           `yaml:"concurrency"`
	ProbeTimeout time.Duration `yaml:"probe_timeout"`
}

// TerminalSettings configures the shell that receives package manager commands.
type TerminalSettings struct {
	Shell  string `yaml:"shell"`
	DryRun bool   `yaml:"dry_run"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the configuration used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Workspaces: []string{"."},
		Registry: RegistrySettings{
			URL:         defaultRegistryURL,
			Timeout:     defaultRegistryTimeout,
			Retries:     defaultRegistryRetries,
			Concurrency: defaultRegistryConcurrency,
			CacheSize:   defaultRegistryCacheSize,
		},
		Scan: ScanSettings{
			Concurrency:  defaultScanConcurrency,
			ProbeTimeout: defaultProbeTimeout,
		},
		Terminal: TerminalSettings{Shell: defaultShell},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Registry.Token = ResolveToken(settings.Registry.Token)
	settings.Registry.URL = strings.TrimRight(settings.Registry.URL, "/")

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings resolves the configuration file from the environment or the
// standard locations. Defaults are returned when no file exists.
func LoadSettings() (*Settings, error) {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return DefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".devmanager.yaml",
		".devmanager.yml",
		"devmanager.yaml",
		"devmanager.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read registry token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for usable configuration values.
func validate(settings *Settings) error {
	parsed, err := url.Parse(settings.Registry.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("registry.url must be an absolute http(s) URL, got %q", settings.Registry.URL)
	}
	if settings.Registry.Timeout <= 0 {
		return errors.New("registry.timeout must be positive")
	}
	if settings.Registry.Retries < 0 {
		return errors.New("registry.retries must not be negative")
	}
	if settings.Registry.Concurrency <= 0 {
		return errors.New("registry.concurrency must be positive")
	}
	if settings.Registry.CacheSize <= 0 {
		return errors.New("registry.cache_size must be positive")
	}
	if settings.Scan.Concurrency <= 0 {
		return errors.New("scan.concurrency must be positive")
	}
	if settings.Scan.ProbeTimeout <= 0 {
		return errors.New("scan.probe_timeout must be positive")
	}
	if settings.Terminal.Shell == "" {
		return errors.New("terminal.shell is required")
	}
	if len(settings.Workspaces) == 0 {
		settings.Workspaces = []string{"."}
	}
	return nil
}
