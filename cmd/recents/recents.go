// Package recents contains the commands for inspecting and editing the list of
// recently joined meetings.
package recents

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbakker/huddle/configs"
	"github.com/pbakker/huddle/internal/meetingid"
	"github.com/pbakker/huddle/internal/store"
)

var RecentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "List recently joined meetings, most recent first",
	Args:  cobra.NoArgs,
	Run:   listRecents,
}

func init() {
	RecentsCmd.AddCommand(removeCmd)
}

func listRecents(_ *cobra.Command, _ []string) {
	st := store.Open(configs.GetDataDir())
	st.Load()

	ids := st.Recents()
	if len(ids) == 0 {
		fmt.Println("no recent meetings")
		return
	}
	for _, id := range ids {
		fmt.Println(meetingid.ToDisplay(id))
	}
}
