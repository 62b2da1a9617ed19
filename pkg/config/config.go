package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Mode selects which report variant a run produces.
type Mode string

const (
	// ModeComplaints extracts per-complaint records into a consolidated workbook.
	ModeComplaints Mode = "complaints"
	// ModeFinancial mines transactions and produces the four-sheet financial report.
	ModeFinancial Mode = "financial"
)

// Config holds all application configuration
type Config struct {
	Input    InputConfig
	Output   OutputConfig
	Pipeline PipelineConfig
	Watch    WatchConfig
	Logging  LoggingConfig
}

type InputConfig struct {
	Dir string
}

type OutputConfig struct {
	ExcelPath string
	CSVPath   string
}

type PipelineConfig struct {
	Mode          Mode
	MinBlockChars int
	Workers       int
}

type WatchConfig struct {
	Enabled  bool
	Schedule string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// A .env file is optional; already-set variables take precedence.
	_ = godotenv.Load()

	cfg := &Config{
		Input: InputConfig{
			Dir: getEnv("INPUT_DIR", "uploaded_pdfs"),
		},
		Output: OutputConfig{
			ExcelPath: getEnv("OUTPUT_XLSX", "Consolidated_Report.xlsx"),
			CSVPath:   getEnv("OUTPUT_CSV", ""),
		},
		Pipeline: PipelineConfig{
			Mode:          Mode(getEnv("ANALYZER_MODE", string(ModeComplaints))),
			MinBlockChars: getEnvAsInt("MIN_BLOCK_CHARS", 200),
			Workers:       getEnvAsInt("WORKERS", 0), // 0 = GOMAXPROCS
		},
		Watch: WatchConfig{
			Enabled:  getEnvAsBool("WATCH_ENABLED", false),
			Schedule: getEnv("WATCH_SCHEDULE", "*/5 * * * *"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	switch cfg.Pipeline.Mode {
	case ModeComplaints, ModeFinancial:
	default:
		return nil, errors.New("ANALYZER_MODE must be 'complaints' or 'financial'")
	}

	if cfg.Pipeline.MinBlockChars < 0 {
		return nil, errors.New("MIN_BLOCK_CHARS must not be negative")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
