package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/penwyp/go-emotilog/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadConfig layers configuration sources, highest precedence first:
// command-line flags, EMOTILOG_* environment variables (a .env file in the
// working directory is loaded into the environment first), then a
// .emotilog.yaml file in EMOTILOG_CONFIG_PATH, the working directory or home.
func loadConfig(cmd *cobra.Command, v *viper.Viper) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetConfigName(".emotilog")
	if override := os.Getenv(envPrefix + "_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		util.LogDebugf("Using config file %s", v.ConfigFileUsed())
	}
	return nil
}
