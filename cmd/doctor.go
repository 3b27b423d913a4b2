package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbakker/huddle/configs"
	"github.com/pbakker/huddle/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, credentials, and local storage",
	Args:  cobra.NoArgs,
	Run:   runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) {
	if _, err := os.Stat(ConfigFile); err != nil {
		fmt.Printf("config file:     missing (%s)\n", ConfigFile)
	} else {
		fmt.Printf("config file:     ok (%s)\n", ConfigFile)
	}

	if err := configs.LoadCredentials().Validate(); err != nil {
		fmt.Printf("credentials:     %v\n", err)
	} else {
		fmt.Println("credentials:     ok")
	}

	if origin := viper.GetString("provider.origin"); origin != "" {
		fmt.Printf("provider:        %s\n", origin)
	} else {
		fmt.Println("provider:        origin not configured")
	}

	dataDir := configs.GetDataDir()
	st := store.Open(dataDir)
	st.Load()
	fmt.Printf("recent meetings: %d stored (%s)\n", len(st.Recents()), dataDir)
	if st.Name() != "" {
		fmt.Printf("display name:    %s\n", st.Name())
	} else {
		fmt.Println("display name:    not set")
	}
}
