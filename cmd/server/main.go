package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vitos/crypto_scenario/internal/domain"
	"github.com/vitos/crypto_scenario/internal/infrastructure/logger"
	"github.com/vitos/crypto_scenario/internal/infrastructure/metrics"
	"github.com/vitos/crypto_scenario/internal/infrastructure/storage"
	"github.com/vitos/crypto_scenario/internal/usecase"
	"github.com/vitos/crypto_scenario/internal/web"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port         int     `yaml:"port"`
		RateLimitRPS float64 `yaml:"rate_limit_rps"`
		RateBurst    int     `yaml:"rate_burst"`
	} `yaml:"server"`
	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
	Storage struct {
		Enabled      bool   `yaml:"enabled"`
		DBPath       string `yaml:"db_path"`
		HistoryLimit int    `yaml:"history_limit"`
	} `yaml:"storage"`
	Analysis struct {
		DefaultLocale string `yaml:"default_locale"`
	} `yaml:"analysis"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyEnv lets SCENARIO_* variables (or a .env file) override the YAML.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SCENARIO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SCENARIO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SCENARIO_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	// Negative turns the limiter off; only an unset value gets the default.
	if cfg.Server.RateLimitRPS == 0 {
		cfg.Server.RateLimitRPS = 20
	}
	if cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = 40
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = "scenarios.db"
	}
	if cfg.Storage.HistoryLimit == 0 {
		cfg.Storage.HistoryLimit = usecase.DefaultHistoryLimit
	}
	if cfg.Analysis.DefaultLocale == "" {
		cfg.Analysis.DefaultLocale = string(domain.LocaleEN)
	}
}

func main() {
	// 1. Load Config
	_ = godotenv.Load()
	configPath := os.Getenv("SCENARIO_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Init Logger
	var log *zap.Logger
	if cfg.Logging.File != "" {
		log, err = logger.NewFileLogger(cfg.Logging.File, cfg.Logging.Level)
	} else {
		log, err = logger.NewLogger(cfg.Logging.Level)
	}
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	// 3. Init Storage
	var repo domain.AnalysisRepository
	if cfg.Storage.Enabled {
		store, err := storage.NewSQLiteStore(cfg.Storage.DBPath)
		if err != nil {
			log.Fatal("Failed to init sqlite", zap.Error(err))
		}
		defer store.Close()
		repo = store
	}

	// 4. Init Metrics and Resolver
	registry := metrics.NewRegistry()
	resolver, err := usecase.NewScenarioResolver(log, usecase.WithUnresolvedRecorder(registry))
	if err != nil {
		log.Fatal("Scenario table failed validation", zap.Error(err))
	}

	// 5. Init Service
	svc := usecase.NewAnalysisService(resolver, repo, registry, usecase.AnalysisConfig{
		DefaultLocale: domain.Locale(cfg.Analysis.DefaultLocale),
		HistoryLimit:  cfg.Storage.HistoryLimit,
	}, log)

	// 6. Init Web Server
	server := web.NewServer(web.Options{
		Port:         cfg.Server.Port,
		RateLimitRPS: cfg.Server.RateLimitRPS,
		RateBurst:    cfg.Server.RateBurst,
	}, svc, registry, log)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// 7. Wait for Shutdown
	<-stop

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Shutdown failed", zap.Error(err))
	}
}
