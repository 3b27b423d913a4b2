package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbakker/huddle/internal/meetingid"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an instant meeting with a freshly generated id",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		bindJoinFlags(cmd)
		viper.Set("meeting-id", string(meetingid.Generate()))
		return nil
	},
	Run: joinMeeting,
}

func init() {
	rootCmd.AddCommand(startCmd)
	addJoinFlags(startCmd)
}
