package bot

import (
	"context"

	"comments_bot/internal/locale"
	"comments_bot/internal/model"
)

func (b *Bot) handleText(ctx context.Context, chatID int64, text string) {
	loc := b.cfg.DefaultLocale

	switch cmd := ParseCommand(text).(type) {
	case Track:
		b.handleTrack(ctx, chatID, loc, cmd.ChannelID)
	case Untrack:
		b.handleUntrack(ctx, chatID, loc, cmd.ChannelID)
	case List:
		b.handleList(ctx, chatID, loc)
	default:
		b.reply(chatID, locale.T(loc, "help", nil))
	}
}

func (b *Bot) handleTrack(ctx context.Context, chatID int64, loc, channelID string) {
	ch := model.Channel{
		ChannelID: channelID,
		ChatID:    chatID,
		Locale:    loc,
	}
	if err := b.store.AddChannel(ctx, ch); err != nil {
		b.log.Error("add channel", "channel_id", channelID, "chat_id", chatID, "error", err)
		b.reply(chatID, locale.T(loc, "generic_error", nil))
		return
	}
	b.reply(chatID, locale.T(loc, "channel_added", nil))
}

func (b *Bot) handleUntrack(ctx context.Context, chatID int64, loc, channelID string) {
	removed, err := b.store.RemoveChannel(ctx, channelID, chatID)
	if err != nil {
		b.log.Error("remove channel", "channel_id", channelID, "chat_id", chatID, "error", err)
		b.reply(chatID, locale.T(loc, "generic_error", nil))
		return
	}
	if !removed {
		b.reply(chatID, locale.T(loc, "channel_not_tracked", nil))
		return
	}
	b.reply(chatID, locale.T(loc, "channel_removed", nil))
}

func (b *Bot) handleList(ctx context.Context, chatID int64, loc string) {
	channels, err := b.store.ListChannels(ctx, chatID)
	if err != nil {
		b.log.Error("list channels", "chat_id", chatID, "error", err)
		b.reply(chatID, locale.T(loc, "generic_error", nil))
		return
	}
	b.reply(chatID, FormatChannelList(loc, channels))
}
