package config

import (
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"healthscreen/internal/i18n"
)

type Config struct {
	DBPath          string `yaml:"db_path"`
	ReportOutputDir string `yaml:"report_output_dir"`
	DataDir         string `yaml:"data_dir"`
	Language        string `yaml:"language"`
	LanguageDir     string `yaml:"language_dir"`
	CatalogOverlay  string `yaml:"catalog_overlay"`
	ExportSchedule  string `yaml:"export_schedule"`
	Timezone        string `yaml:"timezone"`

	Location *time.Location `yaml:"-"`
}

// LoadConfig reads config.yaml (or CONFIG_PATH), applies env overrides and
// defaults, and validates. Invalid config is fatal at startup.
func LoadConfig() Config {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.DBPath, "HEALTHSCREEN_DB_PATH")
	envOverride(&cfg.ReportOutputDir, "HEALTHSCREEN_REPORT_DIR")
	envOverride(&cfg.DataDir, "HEALTHSCREEN_DATA_DIR")
	envOverride(&cfg.Language, "HEALTHSCREEN_LANGUAGE")
	envOverride(&cfg.LanguageDir, "HEALTHSCREEN_LANGUAGE_DIR")
	envOverride(&cfg.CatalogOverlay, "HEALTHSCREEN_CATALOG_OVERLAY")
	envOverride(&cfg.ExportSchedule, "HEALTHSCREEN_EXPORT_SCHEDULE")
	envOverride(&cfg.Timezone, "HEALTHSCREEN_TIMEZONE")

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "./healthscreen.db"
	}
	if cfg.ReportOutputDir == "" {
		cfg.ReportOutputDir = "./reports"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.Language == "" {
		cfg.Language = "tr"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}

	// Validate
	langOK := false
	for _, code := range i18n.Supported {
		if cfg.Language == code {
			langOK = true
		}
	}
	if !langOK {
		log.Fatalf("invalid language '%s': supported languages are %v", cfg.Language, i18n.Supported)
	}

	if cfg.ExportSchedule != "" {
		if _, err := cron.ParseStandard(cfg.ExportSchedule); err != nil {
			log.Fatalf("invalid export_schedule '%s': %v", cfg.ExportSchedule, err)
		}
	}

	if cfg.Timezone == "Local" {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("invalid timezone '%s': %v", cfg.Timezone, err)
		}
		cfg.Location = loc
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
