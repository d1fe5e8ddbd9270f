package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      Server       `mapstructure:"server"`
	FDC         FDC          `mapstructure:"fdc"`
	Cache       Cache        `mapstructure:"cache"`
	Resolver    Resolver     `mapstructure:"resolver"`
	Targets     Targets      `mapstructure:"targets"`
	CustomFoods []CustomFood `mapstructure:"custom_foods"`
}

// Server holds server-related configuration
type Server struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FDC holds FoodData Central API configuration
type FDC struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// Cache holds lookup-memoization configuration
type Cache struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Resolver holds batch-resolution configuration
type Resolver struct {
	Parallelism int `mapstructure:"parallelism"`
}

// Targets holds the daily nutritional thresholds the advisor evaluates
// against. They are configuration, not constants, so they stay tunable and
// testable.
type Targets struct {
	ProteinTargetG            float64 `mapstructure:"protein_target_g"`
	NetCarbMaxG               float64 `mapstructure:"net_carb_max_g"`
	NetCarbMinG               float64 `mapstructure:"net_carb_min_g"`
	MinItemsForProteinWarning int     `mapstructure:"min_items_for_protein_warning"`
}

// CustomFood is a user-defined food with a per-serving nutrient profile.
type CustomFood struct {
	Name      string  `mapstructure:"name"`
	Calories  float64 `mapstructure:"calories"`
	Protein   float64 `mapstructure:"protein"`
	Fat       float64 `mapstructure:"fat"`
	Carbs     float64 `mapstructure:"carbs"`
	Fiber     float64 `mapstructure:"fiber"`
	Sodium    float64 `mapstructure:"sodium"`
	Potassium float64 `mapstructure:"potassium"`
	Magnesium float64 `mapstructure:"magnesium"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/macrotally/")

	v.SetEnvPrefix("MACROTALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	v.SetDefault("fdc.base_url", "https://api.nal.usda.gov/fdc")

	v.SetDefault("cache.ttl", "720h") // nutrient data is effectively static

	v.SetDefault("resolver.parallelism", 4)

	v.SetDefault("targets.protein_target_g", 145)
	v.SetDefault("targets.net_carb_max_g", 40)
	v.SetDefault("targets.net_carb_min_g", 30)
	v.SetDefault("targets.min_items_for_protein_warning", 2)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.FDC.APIKey == "" {
		return fmt.Errorf("FDC API key is required (set MACROTALLY_FDC_API_KEY)")
	}

	if config.Resolver.Parallelism < 1 {
		return fmt.Errorf("resolver parallelism must be at least 1, got: %d", config.Resolver.Parallelism)
	}

	if config.Targets.ProteinTargetG <= 0 {
		return fmt.Errorf("protein target must be positive, got: %g", config.Targets.ProteinTargetG)
	}

	if config.Targets.NetCarbMinG > config.Targets.NetCarbMaxG {
		return fmt.Errorf("net carb lower bound %g exceeds upper bound %g",
			config.Targets.NetCarbMinG, config.Targets.NetCarbMaxG)
	}

	return nil
}
