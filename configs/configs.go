// Package configs contains the logic to obtain app configuration from a file or the environment
package configs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	_ "embed" // used to embed the default application config file.

	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

//go:embed huddle.toml
var defaultConfigFile []byte

// InitConfig initializes the app config with Viper from the environment, a specified file,
// or a default file. A missing or unreadable config file is not fatal: credential checks
// happen at session start, so startup always proceeds on defaults.
func InitConfig(file string) {
	if file == "" {
		panic("dev error, InitConfig should always be passed a valid config filepath")
	}
	viper.SetConfigName("huddle")
	viper.SetConfigType("toml")

	// allow env vars to override config file
	viper.SetEnvPrefix("huddle")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigFile(file)

	// if config file does not exist, create it with the embedded default config
	if _, err := os.Stat(file); err != nil {
		log.Printf("config file not found (%s)", file)
		if err := viper.ReadConfig(bytes.NewBuffer(defaultConfigFile)); err != nil {
			log.Warnf("error reading default embedded config: %v", err)
			return
		}
		log.Printf("writing new config file (%s)", file)
		if err := os.WriteFile(file, defaultConfigFile, 0o600); err != nil {
			log.Warnf("error writing default config: %v", err)
		}
		return
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("error reading config file, proceeding on defaults: %v", err)
	}
}

// GetConfigDir obtains the configuration directory in a cross-platform manner,
// always respecting the XDG_CONFIG_HOME env var, using standard defaults on all OS's,
// but overriding to ~/.config on macOS
func GetConfigDir() string {
	var xdgConfigHome string
	if runtime.GOOS == "darwin" && os.Getenv("XDG_CONFIG_HOME") == "" {
		home, _ := os.UserHomeDir()
		xdgConfigHome = filepath.Join(home, ".config") // override for mac
	} else {
		xdgConfigHome = xdg.ConfigHome
	}

	appConfigDir := filepath.Join(xdgConfigHome, "huddle")
	if err := os.MkdirAll(appConfigDir, 0o750); err != nil {
		log.Fatalf("Error creating application config directory (%s): %v", appConfigDir, err)
	}
	return appConfigDir
}

// GetDataDir obtains the directory holding persistent app state (recent meetings,
// profile), respecting XDG_DATA_HOME. The storage backends create it on first use
// and degrade to in-memory state if they cannot, so no directory is created here.
func GetDataDir() string {
	return filepath.Join(xdg.DataHome, "huddle")
}

// DefaultConfigFilePath is where InitConfig looks unless overridden with --config.
func DefaultConfigFilePath() string {
	return fmt.Sprintf("%s/huddle.toml", GetConfigDir())
}
