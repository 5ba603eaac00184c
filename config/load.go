package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the main runtime configuration.
type AppConfig struct {
	Env     string                  `yaml:"env"`
	Metrics MetricsConfig           `yaml:"metrics"`
	Feed    FeedConfig              `yaml:"feed"`
	Symbols map[string]SymbolConfig `yaml:"symbols"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // 留空则关闭指标服务
}

type FeedConfig struct {
	Mode string `yaml:"mode"` // ws 或 sim
	URL  string `yaml:"url"`  // ws 模式下的行情快照地址
}

// SymbolConfig 保存单个品种的策略参数。
type SymbolConfig struct {
	Strategy    string           `yaml:"strategy"`    // anchor|midpoint|spread|reversion|trend|basket
	Ceiling     int64            `yaml:"ceiling"`     // 仓位上限（对称）
	Tick        int64            `yaml:"tick"`        // 最小报价增量，兼作套利显著性阈值
	DefaultSize int64            `yaml:"defaultSize"` // 标准下单数量，0 则取 ceiling/10
	Anchor      int64            `yaml:"anchor"`      // anchor 策略的固定参考价
	Window      int              `yaml:"window"`      // reversion 的历史窗口
	ShortWindow int              `yaml:"shortWindow"` // trend 短均线窗口
	LongWindow  int              `yaml:"longWindow"`  // trend 长均线窗口
	SizeStep    int64            `yaml:"sizeStep"`    // spread 策略每多少价差加一单位数量
	Weights     map[string]int64 `yaml:"weights"`     // basket 成分权重
}

// Load reads YAML config from path and applies basic validation.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads config then overrides fields from env vars if present.
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("QE_FEED_URL"); v != "" {
		cfg.Feed.URL = v
	}
	if v := os.Getenv("QE_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	return cfg, Validate(cfg)
}

// Validate ensures required fields are present and per-strategy parameters
// are coherent. Basket constituents must themselves be configured symbols,
// since hedge legs clamp against the constituent's own ceiling.
func Validate(cfg AppConfig) error {
	if cfg.Env == "" {
		return errors.New("env is required")
	}
	if cfg.Feed.Mode != "" && cfg.Feed.Mode != "ws" && cfg.Feed.Mode != "sim" {
		return fmt.Errorf("feed.mode must be ws or sim, got %q", cfg.Feed.Mode)
	}
	if cfg.Feed.Mode == "ws" && cfg.Feed.URL == "" {
		return errors.New("feed.url is required in ws mode")
	}
	if len(cfg.Symbols) == 0 {
		return errors.New("symbols config is required")
	}
	for sym, sc := range cfg.Symbols {
		if sc.Strategy == "" {
			return fmt.Errorf("symbol %s strategy is required", sym)
		}
		if sc.Ceiling < 0 {
			return fmt.Errorf("symbol %s ceiling must be >= 0", sym)
		}
		if sc.Tick <= 0 {
			return fmt.Errorf("symbol %s tick must be > 0", sym)
		}
		if sc.DefaultSize < 0 {
			return fmt.Errorf("symbol %s defaultSize must be >= 0", sym)
		}
		switch sc.Strategy {
		case "anchor":
			if sc.Anchor <= 0 {
				return fmt.Errorf("symbol %s anchor must be > 0", sym)
			}
		case "midpoint", "spread":
			if sc.SizeStep < 0 {
				return fmt.Errorf("symbol %s sizeStep must be >= 0", sym)
			}
		case "reversion":
			if sc.Window <= 0 {
				return fmt.Errorf("symbol %s window must be > 0", sym)
			}
		case "trend":
			if sc.ShortWindow <= 0 || sc.LongWindow <= sc.ShortWindow {
				return fmt.Errorf("symbol %s needs 0 < shortWindow < longWindow", sym)
			}
		case "basket":
			if len(sc.Weights) == 0 {
				return fmt.Errorf("symbol %s weights are required", sym)
			}
			for leg, w := range sc.Weights {
				if w <= 0 {
					return fmt.Errorf("symbol %s weight for %s must be > 0", sym, leg)
				}
				if _, ok := cfg.Symbols[leg]; !ok {
					return fmt.Errorf("symbol %s constituent %s is not configured", sym, leg)
				}
			}
		default:
			return fmt.Errorf("symbol %s unknown strategy %q", sym, sc.Strategy)
		}
	}
	return nil
}
