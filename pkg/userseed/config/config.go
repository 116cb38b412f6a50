// Package config loads userseed settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/userseed-go/pkg/userseed/models"
	"gopkg.in/yaml.v3"
)

// Prefix is the environment variable prefix, e.g. USERSEED_PATH.
const Prefix = "USERSEED"

// Config holds settings for a seeding run. CLI flags override these values.
// Keys are derived from field names (USERSEED_RECORDS_FILE etc.); explicit
// envconfig tags are avoided because they fall back to the unprefixed
// variable, and PATH is always set.
type Config struct {
	Path         string `split_words:"true" default:"users.xlsx"`
	Sheet        string `split_words:"true"`
	RecordsFile  string `split_words:"true"`
	PasswordMode string `split_words:"true" default:"plaintext"`
	BcryptCost   int    `split_words:"true" default:"10"`
	LogLevel     string `split_words:"true" default:"info"`
}

// New loads an optional .env file from the working directory and then
// parses USERSEED_* environment variables.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// recordsFile is the YAML layout of a records file:
//
//	users:
//	  - name: Alice Smith
//	    username: asmith
//	    password: password123
type recordsFile struct {
	Users []models.Record `yaml:"users"`
}

// LoadRecords reads seed records from a YAML file. An empty path returns
// the default sample records.
func LoadRecords(path string) ([]models.Record, error) {
	if path == "" {
		return models.DefaultRecords(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var rf recordsFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse records file %s: %w", path, err)
	}
	if rf.Users == nil {
		rf.Users = []models.Record{}
	}
	return rf.Users, nil
}
