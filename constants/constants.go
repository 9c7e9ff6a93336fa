package constants

import (
	"os"
	"strconv"
	"time"
)

func GetListenAddr() string {
	addr := os.Getenv("CHORDEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetDebounce is how long live input waits for the keys to settle before
// printing. Zero prints on every key change.
func GetDebounce() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("CHORDEX_DEBOUNCE_MS"))
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// MIDI key numbers
const MaxKey = 127

// largest request body the server will read
const MaxRequestBytes = 64 * 1024
