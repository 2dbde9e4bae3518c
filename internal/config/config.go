package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/OpenTraceLab/pihwinfo/pkg/cpuinfo"
	"github.com/OpenTraceLab/pihwinfo/pkg/netif"
)

type Config struct {
	CPUInfoPath string
	NetPath     string
	LogLevel    string
	LogJSON     bool
}

func Load() (Config, error) {
	cfg := Config{
		CPUInfoPath: env("PIHW_CPUINFO_PATH", cpuinfo.DefaultPath),
		NetPath:     env("PIHW_NET_PATH", netif.DefaultPath),
		LogLevel:    strings.ToLower(env("PIHW_LOG_LEVEL", "warn")),
		LogJSON:     envBool("PIHW_LOG_JSON", false),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.CPUInfoPath) == "" {
		return errors.New("PIHW_CPUINFO_PATH must not be empty")
	}
	if strings.TrimSpace(c.NetPath) == "" {
		return errors.New("PIHW_NET_PATH must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	return nil
}

func env(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
