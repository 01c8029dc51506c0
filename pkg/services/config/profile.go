package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Profile describes one pipeline run: where the two sources live, where
// reports go, and the default filter applied when no flags are given.
type Profile struct {
	OrdersPath string `mapstructure:"orders_path" validate:"required"`
	ItemsPath  string `mapstructure:"items_path" validate:"required"`
	OutputDir  string `mapstructure:"output_dir"`
	Delimiter  string `mapstructure:"delimiter" validate:"omitempty,len=1"`
	Filter     Filter `mapstructure:"filter"`
}

type Filter struct {
	Status string `mapstructure:"status"`
	Origin string `mapstructure:"origin"`
}

// LoadProfile reads a profile file from the given path.
func LoadProfile(profilePath string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	v.SetDefault("output_dir", ".")
	v.SetDefault("delimiter", ",")
	v.SetDefault("filter.status", "Complete")
	v.SetDefault("filter.origin", "O")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := validator.New().Struct(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", profilePath, err)
	}
	return &profile, nil
}

// DelimiterRune exposes the configured delimiter as the rune the CSV
// layer works with.
func (p *Profile) DelimiterRune() rune {
	if p.Delimiter == "" {
		return ','
	}
	return rune(p.Delimiter[0])
}
