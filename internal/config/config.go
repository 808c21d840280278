package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "greenscore.yaml"

// Config represents the top-level greenscore.yaml configuration.
type Config struct {
	Program ProgramConfig `yaml:"program"`
	Data    DataConfig    `yaml:"data"`
	Scoring ScoringConfig `yaml:"scoring"`
	Report  ReportConfig  `yaml:"report"`
	Server  ServerConfig  `yaml:"server"`
	Git     GitConfig     `yaml:"git"`
}

// ProgramConfig identifies the loyalty program.
type ProgramConfig struct {
	Name string `yaml:"name"`
}

// DataConfig points at the input tables and assets, relative to the
// workspace root unless absolute.
type DataConfig struct {
	Transactions    string `yaml:"transactions"`
	MCC             string `yaml:"mcc"`
	GreenCategories string `yaml:"green_categories,omitempty"`
}

// ScoringConfig controls point assignment and tier boundaries.
type ScoringConfig struct {
	RepeatBonusPercent int64   `yaml:"repeat_bonus_percent"`
	LeaderRank         int     `yaml:"leader_rank"`
	ActiveRatio        float64 `yaml:"active_ratio"`
	DevelopingRatio    float64 `yaml:"developing_ratio"`
}

// ReportConfig controls program report output.
type ReportConfig struct {
	TargetAverageRatio float64 `yaml:"target_average_ratio"` // percent, e.g. 20.0
	TopUsers           int     `yaml:"top_users"`
	TopCategories      int     `yaml:"top_categories"`
}

// ServerConfig controls the report API server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// GitConfig controls git integration for workspace versioning.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a greenscore.yaml file from disk. A .env file in the working
// directory is honored, and GREENSCORE_* environment variables override
// file values.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("GREENSCORE_TRANSACTIONS"); ok {
		cfg.Data.Transactions = v
	}
	if v, ok := os.LookupEnv("GREENSCORE_MCC"); ok {
		cfg.Data.MCC = v
	}
	if v, ok := os.LookupEnv("GREENSCORE_GREEN_CATEGORIES"); ok {
		cfg.Data.GreenCategories = v
	}
	if v, ok := os.LookupEnv("GREENSCORE_SERVER_ADDR"); ok {
		cfg.Server.Addr = v
	}
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(programName string) *Config {
	return &Config{
		Program: ProgramConfig{
			Name: programName,
		},
		Data: DataConfig{
			Transactions:    "data/transactions.csv",
			MCC:             "data/mcc-codes.csv",
			GreenCategories: "data/green-categories.yaml",
		},
		Scoring: ScoringConfig{
			RepeatBonusPercent: 10,
			LeaderRank:         5,
			ActiveRatio:        0.20,
			DevelopingRatio:    0.10,
		},
		Report: ReportConfig{
			TargetAverageRatio: 20.0,
			TopUsers:           5,
			TopCategories:      3,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "GreenScore Bot",
			AuthorEmail: "bot@greenscore.dev",
		},
	}
}
