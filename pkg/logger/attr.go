package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors yield an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Operation(name string) slog.Attr {
	return slog.String("op", name)
}

func MemberID(id string) slog.Attr {
	return slog.String("member_id", id)
}

func SportID(id string) slog.Attr {
	return slog.String("sport_id", id)
}

func CacheKey(key string) slog.Attr {
	return slog.String("cache_key", key)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
