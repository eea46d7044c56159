package configloader

import (
	"fmt"
	"os"
	"time"

	"wallet_inspector/internal/domain/entity"
	networkdefinition "wallet_inspector/internal/infrastructure/network/definition"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-specific configurations. Timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// NetworkConfig holds the provider URL path segment and API key of one network.
type NetworkConfig struct {
	PathSegment string `yaml:"pathSegment"` // e.g. "eth-mainnet"
	APIKey      string `yaml:"apiKey"`
}

// ProviderConfig holds configuration for the blockchain-data provider client.
type ProviderConfig struct {
	BaseURLPrefix        string                   `yaml:"baseURLPrefix"`
	Networks             map[string]NetworkConfig `yaml:"networks"`      // keyed by network name
	AssetSuffixes        map[string]string        `yaml:"assetSuffixes"` // keyed by "token" / "nft"
	RequestTimeoutMillis int64                    `yaml:"requestTimeoutMillis"`
	RateLimit            float64                  `yaml:"rateLimit"`
	BurstLimit           int                      `yaml:"burstLimit"`
	MaxConnsPerHost      int                      `yaml:"maxConnsPerHost"`
}

// BalanceServiceConfig holds configuration for the BalanceService.
type BalanceServiceConfig struct {
	MaxConcurrentLookups int `yaml:"maxConcurrentLookups"`
}

// TransferServiceConfig holds the tunable values of the transfer history request.
type TransferServiceConfig struct {
	FromBlock string `yaml:"fromBlock"`
	MaxCount  string `yaml:"maxCount"`
}

// RateLimitConfig holds the inbound per-client rate limit.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"` // zero disables the limiter
	Burst             int     `yaml:"burst"`
	ClientTTLMinutes  int     `yaml:"clientTTLMinutes"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server          ServerConfig          `yaml:"server"`
	Logging         LoggingConfig         `yaml:"logging"`
	Provider        ProviderConfig        `yaml:"provider"`
	BalanceService  BalanceServiceConfig  `yaml:"balanceService"`
	TransferService TransferServiceConfig `yaml:"transferService"`
	RateLimit       RateLimitConfig       `yaml:"rateLimit"`
}

// Load reads the YAML configuration file from the given path, expands ${VAR} references
// from the environment and applies defaults.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		logrus.Errorf("Failed to parse config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to parse config data from %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return cfg, nil
}

// Parse decodes configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
		logrus.Infof("Server.ReadTimeout not set, defaulting to %d s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 30
		logrus.Infof("Server.WriteTimeout not set, defaulting to %d s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
		logrus.Infof("Server.IdleTimeout not set, defaulting to %d s", cfg.Server.IdleTimeout)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Provider.BaseURLPrefix == "" {
		cfg.Provider.BaseURLPrefix = "https://"
		logrus.Infof("Provider.BaseURLPrefix not set, defaulting to %s", cfg.Provider.BaseURLPrefix)
	}
	if cfg.Provider.AssetSuffixes == nil {
		cfg.Provider.AssetSuffixes = make(map[string]string)
	}
	if _, ok := cfg.Provider.AssetSuffixes[string(entity.FungibleToken)]; !ok {
		cfg.Provider.AssetSuffixes[string(entity.FungibleToken)] = ".g.alchemy.com/v2"
		logrus.Infof("Provider.AssetSuffixes.token not set, defaulting to %s", cfg.Provider.AssetSuffixes[string(entity.FungibleToken)])
	}
	if _, ok := cfg.Provider.AssetSuffixes[string(entity.NonFungibleToken)]; !ok {
		cfg.Provider.AssetSuffixes[string(entity.NonFungibleToken)] = ".g.alchemy.com/nft/v2"
		logrus.Infof("Provider.AssetSuffixes.nft not set, defaulting to %s", cfg.Provider.AssetSuffixes[string(entity.NonFungibleToken)])
	}
	if cfg.Provider.RequestTimeoutMillis <= 0 {
		cfg.Provider.RequestTimeoutMillis = 10000
		logrus.Infof("Provider.RequestTimeoutMillis not set, defaulting to %d ms", cfg.Provider.RequestTimeoutMillis)
	}
	if cfg.Provider.BurstLimit <= 0 {
		cfg.Provider.BurstLimit = 1
	}

	if cfg.BalanceService.MaxConcurrentLookups <= 0 {
		cfg.BalanceService.MaxConcurrentLookups = 8
		logrus.Infof("BalanceService.MaxConcurrentLookups not set, defaulting to %d", cfg.BalanceService.MaxConcurrentLookups)
	}
	if cfg.TransferService.FromBlock == "" {
		cfg.TransferService.FromBlock = "0xF1EB1D"
		logrus.Infof("TransferService.FromBlock not set, defaulting to %s", cfg.TransferService.FromBlock)
	}
	if cfg.TransferService.MaxCount == "" {
		cfg.TransferService.MaxCount = "0x3e8"
		logrus.Infof("TransferService.MaxCount not set, defaulting to %s", cfg.TransferService.MaxCount)
	}

	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.RateLimit.ClientTTLMinutes <= 0 {
		cfg.RateLimit.ClientTTLMinutes = 10
	}
}

func (c *Config) validate() error {
	if len(c.Provider.Networks) == 0 {
		return fmt.Errorf("provider.networks: at least one network must be configured")
	}
	primaryConfigured := false
	for name, nc := range c.Provider.Networks {
		id, ok := entity.ParseNetworkID(name)
		if !ok {
			return fmt.Errorf("provider.networks: unknown network %q", name)
		}
		if id == entity.PrimaryNetwork {
			primaryConfigured = true
		}
		if nc.PathSegment == "" {
			return fmt.Errorf("provider.networks.%s: pathSegment is required", name)
		}
		if nc.APIKey == "" {
			logrus.Warnf("Network '%s' has no API key configured. Provider calls for it will be rejected.", name)
		}
	}
	if !primaryConfigured {
		return fmt.Errorf("provider.networks: primary network %s must be configured", entity.PrimaryNetwork)
	}
	return nil
}

// RequestTimeout returns the per-call provider timeout.
func (p ProviderConfig) RequestTimeout() time.Duration {
	return time.Duration(p.RequestTimeoutMillis) * time.Millisecond
}

// ClientTTL returns how long an idle client keeps its inbound limiter.
func (r RateLimitConfig) ClientTTL() time.Duration {
	return time.Duration(r.ClientTTLMinutes) * time.Minute
}

// Endpoints converts the provider section into the immutable URL composition table.
func (c *Config) Endpoints() networkdefinition.Endpoints {
	networks := make(map[entity.NetworkID]networkdefinition.NetworkEndpoint, len(c.Provider.Networks))
	for name, nc := range c.Provider.Networks {
		id, _ := entity.ParseNetworkID(name)
		networks[id] = networkdefinition.NetworkEndpoint{PathSegment: nc.PathSegment, APIKey: nc.APIKey}
	}
	suffixes := make(map[entity.AssetClass]string, len(c.Provider.AssetSuffixes))
	for class, suffix := range c.Provider.AssetSuffixes {
		suffixes[entity.AssetClass(class)] = suffix
	}
	return networkdefinition.NewEndpoints(c.Provider.BaseURLPrefix, networks, suffixes)
}
