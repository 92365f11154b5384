package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"SentiPulse/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Refresh struct {
		Enabled         bool          `yaml:"enabled"`
		Interval        time.Duration `yaml:"interval"`
		MarketHoursOnly bool          `yaml:"market_hours_only"`
	} `yaml:"refresh"`
	Angel struct {
		APIKey      string        `yaml:"api_key"`
		ClientCode  string        `yaml:"client_code"`
		PIN         string        `yaml:"pin"`
		TOTPSecret  string        `yaml:"totp_secret"`
		BaseURL     string        `yaml:"base_url"`
		Timeout     time.Duration `yaml:"timeout"`
		BatchSize   int           `yaml:"batch_size"`
		BatchDelay  time.Duration `yaml:"batch_delay"`
		LocalIP     string        `yaml:"local_ip"`
		PublicIP    string        `yaml:"public_ip"`
		MACAddress  string        `yaml:"mac_address"`
		MaxRequests float64       `yaml:"max_requests_per_sec"`
	} `yaml:"angel"`
	History struct {
		Backend string       `yaml:"backend"` // "sheets" or "clickhouse"
		Sheets  SheetsConfig `yaml:"sheets"`
	} `yaml:"history"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic"`
		RequiredAcks int           `yaml:"required_acks"`
		Compression  string        `yaml:"compression"`
		MaxAttempts  int           `yaml:"max_attempts"`
		Linger       time.Duration `yaml:"linger"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
	} `yaml:"kafka"`
	Cache struct {
		Backend string `yaml:"backend"` // "memory" or "redis"
		Redis   struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Scoring struct {
		VolumeNormalizer float64 `yaml:"volume_normalizer"`
		PCRBullishBase   float64 `yaml:"pcr_bullish_base"`
		PCRBearishBase   float64 `yaml:"pcr_bearish_base"`
	} `yaml:"scoring"`
	Composite struct {
		MinPoints         int     `yaml:"min_points"`
		SmoothWindow      int     `yaml:"smooth_window"`
		NormWindow        int     `yaml:"norm_window"`
		BuyThreshold      float64 `yaml:"buy_threshold"`
		SellThreshold     float64 `yaml:"sell_threshold"`
		MomentumThreshold float64 `yaml:"momentum_threshold"`
	} `yaml:"composite"`
}

// SheetsConfig locates the Google Sheets history worksheet and its
// service account credentials. CredentialsJSON takes priority over the
// file path when both are set.
type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	Worksheet       string `yaml:"worksheet"`
	CredentialsFile string `yaml:"credentials_file"`
	CredentialsJSON string `yaml:"credentials_json"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ANGEL_API_KEY"); v != "" {
		c.Angel.APIKey = v
	}
	if v := os.Getenv("ANGEL_CLIENT_CODE"); v != "" {
		c.Angel.ClientCode = v
	}
	if v := os.Getenv("ANGEL_PIN"); v != "" {
		c.Angel.PIN = v
	}
	if v := os.Getenv("ANGEL_TOTP_SECRET"); v != "" {
		c.Angel.TOTPSecret = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS"); v != "" {
		c.History.Sheets.CredentialsJSON = v
	}
	if v := os.Getenv("SHEETS_SPREADSHEET_ID"); v != "" {
		c.History.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("HISTORY_BACKEND"); v != "" {
		c.History.Backend = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port := v, 6379
		if i := strings.LastIndex(v, ":"); i > 0 {
			host = v[:i]
			port = util.ParseIntDefault(v[i+1:], 6379)
		}
		c.Cache.Redis.Host = host
		c.Cache.Redis.Port = port
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Angel.BaseURL == "" {
		c.Angel.BaseURL = "https://apiconnect.angelone.in"
	}
	if c.Angel.Timeout <= 0 {
		c.Angel.Timeout = 30 * time.Second
	}
	if c.Angel.BatchSize <= 0 {
		c.Angel.BatchSize = 50
	}
	if c.Angel.BatchDelay <= 0 {
		c.Angel.BatchDelay = 500 * time.Millisecond
	}
	if c.Angel.MaxRequests <= 0 {
		c.Angel.MaxRequests = 2
	}
	if c.Scoring.VolumeNormalizer <= 0 {
		c.Scoring.VolumeNormalizer = 100000
	}
	if c.Scoring.PCRBullishBase <= 0 {
		c.Scoring.PCRBullishBase = 1.1
	}
	if c.Scoring.PCRBearishBase <= 0 {
		c.Scoring.PCRBearishBase = 0.9
	}
	if c.Composite.MinPoints <= 0 {
		c.Composite.MinPoints = 12
	}
	if c.Composite.SmoothWindow <= 0 {
		c.Composite.SmoothWindow = 12
	}
	if c.Composite.NormWindow <= 0 {
		c.Composite.NormWindow = 24
	}
	if c.Composite.BuyThreshold <= 0 {
		c.Composite.BuyThreshold = 0.65
	}
	if c.Composite.SellThreshold <= 0 {
		c.Composite.SellThreshold = 0.35
	}
	if c.Composite.MomentumThreshold <= 0 {
		c.Composite.MomentumThreshold = 0.05
	}
	if c.Refresh.Interval <= 0 {
		c.Refresh.Interval = 5 * time.Minute
	}
	if c.History.Sheets.Worksheet == "" {
		c.History.Sheets.Worksheet = "Sheet1"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Angel.APIKey == "" {
		return fmt.Errorf("angel.api_key is required")
	}
	if c.Angel.ClientCode == "" {
		return fmt.Errorf("angel.client_code is required")
	}
	if c.History.Backend == "" {
		return fmt.Errorf("history.backend is required")
	}
	if c.History.Backend != "sheets" && c.History.Backend != "clickhouse" {
		return fmt.Errorf("history.backend must be 'sheets' or 'clickhouse', got '%s'", c.History.Backend)
	}
	if c.History.Backend == "sheets" && c.History.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("history.sheets.spreadsheet_id is required for the sheets backend")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	return nil
}
