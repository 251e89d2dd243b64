package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themeforge/internal/render"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
	forgeerrors "github.com/alexisbeaulieu97/themeforge/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. THEMEFORGE_LOG_LEVEL=debug.
const EnvPrefix = "THEMEFORGE"

// Output formats for theme documents.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSS  = "css"
)

// Settings holds tool-wide preferences.
type Settings struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	HumanLogs bool   `mapstructure:"human_logs" yaml:"human_logs"`
	Resolver  string `mapstructure:"resolver" yaml:"resolver" validate:"resolver_tier"`
	Format    string `mapstructure:"format" yaml:"format" validate:"oneof=json yaml css"`
	FontID    string `mapstructure:"font_id" yaml:"font_id" validate:"omitempty,font_id"`
	Document  string `mapstructure:"document" yaml:"document" validate:"required"`
	Defaults  string `mapstructure:"defaults" yaml:"defaults"`
}

// DefaultSettings returns the values used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "info",
		Resolver: render.TierNone,
		Format:   FormatJSON,
		Document: "theme.json",
	}
}

// Load reads settings from path, or from themeforge.yaml in the working
// directory when path is empty, then applies THEMEFORGE_* environment
// overrides and validates the result. A missing default file is not an error.
func Load(path string) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("human_logs", defaults.HumanLogs)
	v.SetDefault("resolver", defaults.Resolver)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("font_id", defaults.FontID)
	v.SetDefault("document", defaults.Document)
	v.SetDefault("defaults", defaults.Defaults)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("themeforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, forgeerrors.NewParseError(configPath(v, path), extractLine(err), err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, forgeerrors.NewParseError(configPath(v, path), 0, err)
	}

	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))
	settings.Resolver = strings.ToLower(strings.TrimSpace(settings.Resolver))
	settings.Format = strings.ToLower(strings.TrimSpace(settings.Format))

	if err := ValidateSettings(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// ValidateSettings checks settings against their validation tags.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return forgeerrors.NewValidationError("settings", "settings are nil", nil)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// Font returns the configured font, or the empty FontID.
func (s Settings) Font() theme.FontID {
	return theme.FontID(s.FontID)
}

func configPath(v *viper.Viper, path string) string {
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	return path
}
