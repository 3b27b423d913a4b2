package recents

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbakker/huddle/configs"
	"github.com/pbakker/huddle/internal/meetingid"
	"github.com/pbakker/huddle/internal/store"
)

var removeCmd = &cobra.Command{
	Use:   "remove [meeting-id]",
	Short: "Remove a meeting from the recents list",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(_ *cobra.Command, args []string) error {
		id, err := meetingid.Validate(args[0])
		if err != nil {
			return err
		}
		viper.Set("meeting-id", string(id))
		return nil
	},
	Run: removeRecent,
}

func removeRecent(_ *cobra.Command, _ []string) {
	st := store.Open(configs.GetDataDir())
	st.Load()

	id := meetingid.ID(viper.GetString("meeting-id"))
	index, ok := st.Remove(id)
	if !ok {
		fmt.Printf("%s is not in the recents list\n", meetingid.ToDisplay(id))
		return
	}
	fmt.Printf("removed %s\n", meetingid.ToDisplay(id))

	// one level of undo, offered right after the delete
	fmt.Print("undo? [y/N] ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err == nil {
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "y" || answer == "yes" {
			st.UndoRemove(id, index)
			fmt.Printf("restored %s\n", meetingid.ToDisplay(id))
		}
	}
	st.Flush()
}
