package config

import (
	"fmt"
	"log/slog" // Use the new structured logger
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultActors is the classic demo scenario: four people pulling 50 five
// times each plus a kiosk pulling 20 five times, against an opening balance
// of 1000. Total demand 1100 > 1000, so someone always gets declined.
const defaultActors = "Alice:50:5,Bob:50:5,Charlie:50:5,Diana:50:5,ATM-Kiosk:20:5"

type Config struct {
	OpeningBalance int64
	Currency       string
	Actors         []ActorSpec
	Pause          time.Duration
	WebhookURL     string
	Env            string
}

// ActorSpec describes one withdrawer: how much per attempt and how often.
type ActorSpec struct {
	Name   string
	Amount int64 // Minor units per attempt
	Count  int
}

// Load reads .env plus system env and returns a Config struct.
// Malformed values come back as errors so main owns the process exit.
func Load() (*Config, error) {
	// Try loading .env file (it might not exist in Production, which is fine)
	err := godotenv.Load()
	if err != nil {
		// We use Warn because it's not a crash, but it's worth noting
		slog.Warn("No .env file found, relying on System Env Variables")
	}

	opening, err := strconv.ParseInt(getEnv("OPENING_BALANCE", "1000"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OPENING_BALANCE is not a number: %w", err)
	}
	if opening < 0 {
		return nil, fmt.Errorf("OPENING_BALANCE cannot be negative: got %d", opening)
	}

	actors, err := ParseActors(getEnv("ACTORS", defaultActors))
	if err != nil {
		return nil, fmt.Errorf("ACTORS: %w", err)
	}

	pauseMs, err := strconv.Atoi(getEnv("PAUSE_MS", "1"))
	if err != nil {
		return nil, fmt.Errorf("PAUSE_MS is not a number: %w", err)
	}
	if pauseMs < 0 {
		return nil, fmt.Errorf("PAUSE_MS cannot be negative: got %d", pauseMs)
	}

	return &Config{
		OpeningBalance: opening,
		Currency:       getEnv("CURRENCY", "USD"),
		Actors:         actors,
		Pause:          time.Duration(pauseMs) * time.Millisecond,
		WebhookURL:     getEnv("WEBHOOK_URL", ""),
		Env:            getEnv("ENV", "development"),
	}, nil
}

// ParseActors parses a comma-separated list of name:amount:count specs,
// e.g. "Alice:50:5,ATM-Kiosk:20:5".
func ParseActors(raw string) ([]ActorSpec, error) {
	var specs []ActorSpec
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("bad actor spec %q, want name:amount:count", part)
		}
		name := strings.TrimSpace(fields[0])
		if name == "" {
			return nil, fmt.Errorf("bad actor spec %q: empty name", part)
		}
		amount, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || amount <= 0 {
			return nil, fmt.Errorf("bad actor spec %q: amount must be a positive number", part)
		}
		count, err := strconv.Atoi(fields[2])
		if err != nil || count < 0 {
			return nil, fmt.Errorf("bad actor spec %q: count must be a non-negative number", part)
		}
		specs = append(specs, ActorSpec{Name: name, Amount: amount, Count: count})
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no actors configured")
	}
	return specs, nil
}

// Helper to get env with a default fallback. An empty value counts as unset
// so `ACTORS=` falls back to the demo scenario instead of failing to parse.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
