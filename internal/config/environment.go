package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

var (
	// ErrUnknownEnvironment is returned when the config has no such section
	ErrUnknownEnvironment = errors.New("invalid environment")
	// ErrMissingKey is returned when a section lacks Host or Token
	ErrMissingKey = errors.New("missing key")
)

// Environment is a named target server
type Environment struct {
	Name     string
	Host     string
	Token    string
	Database string
}

// LoadDotEnv loads path into the process environment. A missing file is
// not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ResolveEnvironment reads the INI file at path and returns the section
// called name. Keys are case-insensitive, keys missing from the section
// are taken from DEFAULT, and ${VAR} references are expanded from the
// process environment.
func ResolveEnvironment(path, name string) (*Environment, error) {
	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: read %s: %v", ErrUnknownEnvironment, name, path, err)
	}

	section, err := file.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownEnvironment, name)
	}
	defaults := file.Section(ini.DefaultSection)

	lookup := func(key string) (string, bool) {
		switch {
		case section.HasKey(key):
			return os.ExpandEnv(section.Key(key).String()), true
		case defaults.HasKey(key):
			return os.ExpandEnv(defaults.Key(key).String()), true
		}
		return "", false
	}

	host, ok := lookup("host")
	if !ok {
		return nil, fmt.Errorf("%w %q: %w: Host", ErrUnknownEnvironment, name, ErrMissingKey)
	}
	token, ok := lookup("token")
	if !ok {
		return nil, fmt.Errorf("%w %q: %w: Token", ErrUnknownEnvironment, name, ErrMissingKey)
	}
	database, _ := lookup("database")

	env := &Environment{
		Name:     name,
		Host:     host,
		Token:    strings.TrimSpace(token),
		Database: database,
	}
	return env, nil
}
