package bot

import (
	"fmt"
	"strings"

	"comments_bot/internal/locale"
	"comments_bot/internal/model"
)

// FormatChannelList formats the channels tracked in a chat for display.
func FormatChannelList(loc string, channels []model.Channel) string {
	if len(channels) == 0 {
		return locale.T(loc, "no_channels", nil)
	}

	var b strings.Builder
	b.WriteString(locale.T(loc, "channels_header", nil))
	for _, ch := range channels {
		fmt.Fprintf(&b, "\n- %s", ch.ChannelID)
	}
	return b.String()
}
