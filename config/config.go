// Package config provides configuration management for the ThePay gate service.
// Configuration can be loaded from YAML files and overridden by environment variables.
package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"sync"
	"thepay/entity"
)

// Config holds all configuration for the gate service.
// Environment variables take precedence over YAML values.
type Config struct {
	IsDebug    bool  `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	LogRecords int64 `yaml:"log_records" env:"LOG_RECORDS" env-default:"0"`
	Listen     struct {
		Type     string `yaml:"type" env:"LISTEN_TYPE" env-default:"port"`
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"5200"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:"admin"`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:"pass"`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:""`
	} `yaml:"mongo"`
	Merchant struct {
		MerchantId string `yaml:"merchant_id" env:"MERCHANT_ID" env-default:""`
		AccountId  string `yaml:"account_id" env:"MERCHANT_ACCOUNT_ID" env-default:""`
		Password   string `yaml:"password" env:"MERCHANT_PASSWORD" env-default:""`
		GateUrl    string `yaml:"gate_url" env:"MERCHANT_GATE_URL" env-default:"https://www.thepay.cz/demo-gate/"`
		// ReturnUrl overrides the URL of the inbound request as the default return URL.
		// Set it when the service is called as an API, otherwise the gate returns the
		// customer to POST /payment.
		ReturnUrl string `yaml:"return_url" env:"MERCHANT_RETURN_URL" env-default:""`
	} `yaml:"merchant"`
}

var instance *Config
var once sync.Once

// GetConfig loads configuration from the specified YAML file path.
// This function uses a singleton pattern and only loads the config once.
//
// Example:
//
//	cfg, err := config.GetConfig("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("load config: %w; %s", err, desc)
			instance = nil
		}
	})
	return instance, err
}

// MerchantConfig returns the merchant credentials used to sign gate requests.
func (c *Config) MerchantConfig() *entity.MerchantConfig {
	return &entity.MerchantConfig{
		MerchantId: c.Merchant.MerchantId,
		AccountId:  c.Merchant.AccountId,
		Password:   c.Merchant.Password,
		GateUrl:    c.Merchant.GateUrl,
	}
}
