// Package locale provides the phrase table for user-facing messages.
//
// Two locales are supported: "en" (default) and "ru". An unknown locale or
// a phrase missing from the alternate locale falls back to the default.
package locale

import "strings"

// DefaultLocale is used when a locale tag is empty or unknown.
const DefaultLocale = "en"

var phrases = map[string]map[string]string{
	"en": {
		"no_new_comments":     "No new comments",
		"unknown_video":       "unknown video",
		"new_comment":         "New comment from <b>{author}</b> on «{videoTitle}»:\n\n{text}\n\nhttps://www.youtube.com/watch?v={videoId}&lc={commentId}",
		"channel_added":       "Channel added!",
		"channel_removed":     "Channel removed.",
		"channel_not_tracked": "This channel is not tracked in this chat.",
		"channels_header":     "Channels tracked in this chat:",
		"no_channels":         "No channels tracked yet. Try: track <channel id>",
		"generic_error":       "Something went wrong :(",
		"help":                "I did not understand that. Try:\n- track <channel id>\n- untrack <channel id>\n- channels",
	},
	"ru": {
		"no_new_comments":     "Новых комментариев нет",
		"unknown_video":       "неизвестное видео",
		"new_comment":         "Новый комментарий от <b>{author}</b> к «{videoTitle}»:\n\n{text}\n\nhttps://www.youtube.com/watch?v={videoId}&lc={commentId}",
		"channel_added":       "Канал добавлен!",
		"channel_removed":     "Канал удалён.",
		"channel_not_tracked": "Этот канал не отслеживается в этом чате.",
		"channels_header":     "Каналы подключенные к этому чату:",
		"no_channels":         "Каналы ещё не добавлены. Попробуй: track <id канала>",
		"generic_error":       "Что-то пошло не так :(",
		"help":                "Я не понял команду. Попробуй:\n- track <id канала>\n- untrack <id канала>\n- channels",
	},
}

// T renders the phrase identified by key in the given locale, substituting
// {name} placeholders from params. Unknown keys render as the key itself so
// a missing phrase is visible rather than silent.
func T(loc, key string, params map[string]string) string {
	table, ok := phrases[loc]
	if !ok {
		table = phrases[DefaultLocale]
	}
	phrase, ok := table[key]
	if !ok {
		phrase, ok = phrases[DefaultLocale][key]
		if !ok {
			return key
		}
	}
	for name, value := range params {
		phrase = strings.ReplaceAll(phrase, "{"+name+"}", value)
	}
	return phrase
}

// Supported reports whether loc has its own phrase table.
func Supported(loc string) bool {
	_, ok := phrases[loc]
	return ok
}
