package bot

import (
	"regexp"
	"strings"
)

// Command is one recognized free-text command.
type Command interface{ isCommand() }

// Track adds a channel to the registry for the current chat.
type Track struct{ ChannelID string }

// Untrack removes a channel from the registry for the current chat.
type Untrack struct{ ChannelID string }

// List shows the channels tracked in the current chat.
type List struct{}

func (Track) isCommand()   {}
func (Untrack) isCommand() {}
func (List) isCommand()    {}

var (
	trackRe   = regexp.MustCompile(`(?i)^track\s+(\S+)$`)
	untrackRe = regexp.MustCompile(`(?i)^untrack\s+(\S+)$`)
)

// ParseCommand matches a message against the recognized command shapes.
// It returns nil for anything unrecognized, which callers answer with the
// help message.
func ParseCommand(text string) Command {
	text = strings.TrimSpace(text)

	if m := trackRe.FindStringSubmatch(text); m != nil {
		return Track{ChannelID: m[1]}
	}
	if m := untrackRe.FindStringSubmatch(text); m != nil {
		return Untrack{ChannelID: m[1]}
	}
	switch strings.ToLower(text) {
	case "channels", "list channels":
		return List{}
	}
	return nil
}
