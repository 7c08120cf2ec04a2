// Package config loads application settings from a YAML file. The loaded
// struct is passed explicitly to every constructor that needs it; there is
// no package-level singleton.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/shipping"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir         string                `yaml:"data_dir"`
	LogFile         string                `yaml:"log_file"`
	Currency        string                `yaml:"currency"`
	MaxNameLen      int                   `yaml:"max_name_len"`
	FreeShippingMin float64               `yaml:"free_shipping_min"`
	ShippingRates   []shipping.RegionRate `yaml:"shipping_rates"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		DataDir:         "data",
		LogFile:         "cartsim.log",
		Currency:        "R$",
		MaxNameLen:      100,
		FreeShippingMin: 300,
		ShippingRates:   shipping.DefaultRates(),
	}
}

// Load reads the config at path, falling back to Default when the file is
// absent. Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.ShippingRates) == 0 {
		cfg.ShippingRates = shipping.DefaultRates()
	}
	return cfg, nil
}

// ProductsFile is the catalog collection path.
func (c *Config) ProductsFile() string {
	return filepath.Join(c.DataDir, "products.json")
}

// CouponsFile is the coupon collection path.
func (c *Config) CouponsFile() string {
	return filepath.Join(c.DataDir, "coupons.json")
}

// OrdersFile is the order history path.
func (c *Config) OrdersFile() string {
	return filepath.Join(c.DataDir, "orders.json")
}
