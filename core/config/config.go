package config

import (
	"reflect"
	"strings"

	"layout-catalog/core/database"
	"layout-catalog/core/logger"
	"layout-catalog/core/remote"
	"layout-catalog/core/server"
	"layout-catalog/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LayoutsConfig holds settings for the layout catalog feature.
type LayoutsConfig struct {
	// Scale is the display scale factor sent with every catalog request.
	Scale float64 `mapstructure:"scale" default:"2"`
	// ArchiveEnabled writes every reconciled catalog to object storage.
	ArchiveEnabled bool `mapstructure:"archive_enabled" default:"false"`
	// ArchivePrefix is the object prefix for archived catalog snapshots.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"layouts"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the local layout store.
	Database database.Config `mapstructure:"database"`
	// Remote holds configuration for the remote layout API.
	Remote remote.Config `mapstructure:"remote"`
	// Layouts holds configuration for the layout catalog feature.
	Layouts LayoutsConfig `mapstructure:"layouts"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
