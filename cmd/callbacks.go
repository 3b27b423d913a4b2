package cmd

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// terminalCallbacks implements session.Callbacks for terminal use.
type terminalCallbacks struct{}

// AvatarURL renders a deterministic initials avatar for the given name.
func (terminalCallbacks) AvatarURL(displayName string) string {
	return "https://api.dicebear.com/9.x/initials/svg?seed=" + url.QueryEscape(displayName)
}

// OnError logs the provider error and shows a generic non-blocking notice.
func (terminalCallbacks) OnError(err error) {
	log.Errorf("meeting session problem: %v", err)
	fmt.Println("something went wrong with the meeting session")
}

// ConfirmLeave gates teardown behind a yes/no prompt.
func (terminalCallbacks) ConfirmLeave() bool {
	return promptYesNo("leave the meeting?")
}

func promptYesNo(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return true
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
