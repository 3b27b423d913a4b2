// Package cmd contains the CLI setup and commands exposed to the user
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbakker/huddle/cmd/recents"
	"github.com/pbakker/huddle/configs"
)

var ConfigFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "huddle",
	Short: "Client for joining and starting video meetings",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// deferring this allows user to override config path with cli option
	cobra.OnInitialize(func() {
		configs.InitConfig(ConfigFile)
		initLogging()
	})

	defaultConfigFilePath := configs.DefaultConfigFilePath()
	rootCmd.PersistentFlags().StringVar(&ConfigFile, "config", defaultConfigFilePath, "config file")

	rootCmd.PersistentFlags().String("provider-origin", "", "Conferencing provider origin")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debugging information")

	// expose to application via viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("provider.origin", rootCmd.PersistentFlags().Lookup("provider-origin"))

	rootCmd.AddCommand(recents.RecentsCmd)
}

// initLogging configures the process logger from config. The debug flag wins over
// the configured level.
func initLogging() {
	if viper.GetString("log.format") == "json" {
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	if viper.GetBool("debug") {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}
