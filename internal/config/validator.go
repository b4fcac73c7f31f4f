package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"benchcmp/internal/benchmark"
)

// ParsePair parses an "impl/target" string into a benchmark.Pair.
func ParsePair(s string) (benchmark.Pair, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return benchmark.Pair{}, fmt.Errorf("invalid pair %q: want impl/target", s)
	}
	return benchmark.Pair{Impl: parts[0], Target: parts[1]}, nil
}

// Order returns the configured comparison order of pairs.
func Order() ([]benchmark.Pair, error) {
	specs := viper.GetStringSlice("order")
	pairs := make([]benchmark.Pair, 0, len(specs))
	for _, s := range specs {
		p, err := ParsePair(s)
		if err != nil {
			return nil, fmt.Errorf("order: %w", err)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Reference returns the configured reference pair.
func Reference() (benchmark.Pair, error) {
	p, err := ParsePair(viper.GetString("reference"))
	if err != nil {
		return benchmark.Pair{}, fmt.Errorf("reference: %w", err)
	}
	return p, nil
}

// ValidateConfig validates configuration values and returns an error if any
// are invalid. It should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errs []string

	if _, err := Order(); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := Reference(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
