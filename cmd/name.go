package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbakker/huddle/configs"
	"github.com/pbakker/huddle/internal/session"
	"github.com/pbakker/huddle/internal/store"
)

var nameCmd = &cobra.Command{
	Use:   "name [display-name]",
	Short: "Show or set the remembered display name",
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return nil
		}
		if err := session.ValidateName(args[0]); err != nil {
			return err
		}
		viper.Set("display-name", args[0])
		return nil
	},
	Run: showOrSetName,
}

func init() {
	rootCmd.AddCommand(nameCmd)
}

func showOrSetName(_ *cobra.Command, _ []string) {
	st := store.Open(configs.GetDataDir())
	st.Load()

	name := viper.GetString("display-name")
	if name == "" {
		if current := st.Name(); current != "" {
			fmt.Println(current)
		} else {
			fmt.Println("no display name stored")
		}
		return
	}

	st.SaveName(name)
	st.Flush()
	log.Printf("display name saved: %s", name)
}
