package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration. Every key can be overridden
// through environment variables (dots become underscores, upper-cased), so a
// container needs no config file at all.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Redis   RedisConfig   `mapstructure:"redis"`
	AWS     AWSConfig     `mapstructure:"aws"`
	Gateway GatewayConfig `mapstructure:"gateway"`
}

type AppConfig struct {
	Name      string `mapstructure:"name"`
	Port      string `mapstructure:"port"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AWSConfig struct {
	Region            string `mapstructure:"region"`
	NotificationTopic string `mapstructure:"notification_topic"`
}

type GatewayConfig struct {
	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
}

// Load reads configs/config.yaml when present and merges environment
// overrides on top.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "nagrik-seva")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("aws.region", "ap-south-1")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
