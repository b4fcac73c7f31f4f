package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("BENCHCMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults: the hardcoded comparison policy.
	viper.SetDefault("order", []string{"rust/rust", "moonbit/native", "moonbit/wasm-gc"})
	viper.SetDefault("reference", "rust/rust")
	viper.SetDefault("verbose", false)

	// A missing config file is not an error; the defaults are the policy.
	_ = viper.ReadInConfig()
}
