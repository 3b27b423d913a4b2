package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbakker/huddle/configs"
	"github.com/pbakker/huddle/internal/meetingid"
	"github.com/pbakker/huddle/internal/provider"
	"github.com/pbakker/huddle/internal/session"
	"github.com/pbakker/huddle/internal/store"
)

var joinCmd = &cobra.Command{
	Use:   "join [meeting-id]",
	Short: "Join a meeting by its id",
	Long: `Arguments:
      meeting-id    The 10-digit meeting id, with or without hyphens (required)
	`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		bindJoinFlags(cmd)
		if len(args) == 0 {
			return fmt.Errorf("meeting id must be specified as an argument")
		}
		viper.Set("meeting-id", args[0])
		return nil
	},
	Run: joinMeeting,
}

func init() {
	rootCmd.AddCommand(joinCmd)
	addJoinFlags(joinCmd)
}

// addJoinFlags declares the flags shared by the join and start commands.
func addJoinFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("name", "", "display name to join with (defaults to the remembered name)")
	cmd.PersistentFlags().Bool("camera", true, "join with the camera on")
	cmd.PersistentFlags().Bool("mic", true, "join with the microphone on")
	cmd.PersistentFlags().Bool("speaker", true, "join with the speaker on")
}

// bindJoinFlags exposes the invoked command's flags via viper. Bound in PreRunE
// because join and start share the same keys.
func bindJoinFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("join.name", cmd.PersistentFlags().Lookup("name"))
	_ = viper.BindPFlag("join.camera", cmd.PersistentFlags().Lookup("camera"))
	_ = viper.BindPFlag("join.mic", cmd.PersistentFlags().Lookup("mic"))
	_ = viper.BindPFlag("join.speaker", cmd.PersistentFlags().Lookup("speaker"))
}

func joinMeeting(_ *cobra.Command, _ []string) {
	candidate, name := viper.GetString("meeting-id"), viper.GetString("join.name")

	st := store.Open(configs.GetDataDir())
	st.Load()

	if name == "" {
		name = st.Name()
	}

	creds := configs.LoadCredentials()
	id, err := session.Preflight(name, candidate, creds)
	if err != nil {
		log.Fatal(err.Error())
	}

	st.Add(id)
	if name != st.Name() {
		st.SaveName(name)
	}
	defer st.Flush()

	desc := session.Descriptor{
		UserID:      session.NewUserID(),
		DisplayName: name,
		MeetingID:   id,
		Camera:      viper.GetBool("join.camera"),
		Mic:         viper.GetBool("join.mic"),
		Speaker:     viper.GetBool("join.speaker"),
	}

	// parent context cancelled by ctrl-C, which triggers the leave confirmation
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := provider.NewClient(viper.GetString("provider.origin"))
	log.Printf("joining meeting %s as %s", meetingid.ToDisplay(id), name)
	if jErr := client.Join(ctx, creds, desc, terminalCallbacks{}); jErr != nil {
		fmt.Println(jErr)
	}
}
