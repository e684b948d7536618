package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvChainUrl = "CHAIN_URL"

	DefaultChainUrl       = "https://ethereum.publicnode.com"
	DefaultNativeSymbol   = "ETH"
	DefaultNativeDecimals = 18
	DefaultOutput         = "output.csv"
	DefaultRPCTimeout     = 30 * time.Second
)

var (
	ErrorInvalidConfig = errors.New("invalid config")
)

// Config is the run configuration, read from a YAML file.
type Config struct {
	ChainUrl       string   `yaml:"chain_url"`
	NativeSymbol   string   `yaml:"native_symbol"`
	NativeDecimals *uint8   `yaml:"native_decimals"`
	Output         string   `yaml:"output"`
	RPCTimeout     string   `yaml:"rpc_timeout"`
	FailurePolicy  string   `yaml:"failure_policy"`
	TotalsFormat   string   `yaml:"totals_format"`
	Tokens         []string `yaml:"tokens"`
	Wallets        []string `yaml:"wallets"`

	timeout time.Duration
}

// Load reads path, applies a .env file if one exists and then the CHAIN_URL
// environment override, fills defaults and validates.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if v := strings.TrimSpace(os.Getenv(EnvChainUrl)); v != "" {
		cfg.ChainUrl = v
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize fills defaults and validates. Addresses are not checked here.
func (c *Config) Finalize() error {
	c.ChainUrl = strings.TrimSpace(c.ChainUrl)
	if c.ChainUrl == "" {
		c.ChainUrl = DefaultChainUrl
	}
	if strings.TrimSpace(c.NativeSymbol) == "" {
		c.NativeSymbol = DefaultNativeSymbol
	}
	if c.NativeDecimals == nil {
		d := uint8(DefaultNativeDecimals)
		c.NativeDecimals = &d
	}
	if strings.TrimSpace(c.Output) == "" {
		c.Output = DefaultOutput
	}

	c.timeout = DefaultRPCTimeout
	if s := strings.TrimSpace(c.RPCTimeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: rpc_timeout %q", ErrorInvalidConfig, c.RPCTimeout)
		}
		c.timeout = d
	}

	switch c.FailurePolicy {
	case "", "fail_fast", "collect_all":
	default:
		return fmt.Errorf("%w: failure_policy %q", ErrorInvalidConfig, c.FailurePolicy)
	}
	switch c.TotalsFormat {
	case "", "raw", "formatted":
	default:
		return fmt.Errorf("%w: totals_format %q", ErrorInvalidConfig, c.TotalsFormat)
	}
	return nil
}

func (c *Config) Timeout() time.Duration {
	return c.timeout
}

func (c *Config) Decimals() uint8 {
	if c.NativeDecimals == nil {
		return DefaultNativeDecimals
	}
	return *c.NativeDecimals
}
