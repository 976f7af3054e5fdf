package config

import (
	"os"
	"strconv"
)

type Config struct {
	RoundSeconds  int
	GuesserPoints int
	DrawerPoints  int
	WSRateLimit   float64
	WSRateBurst   int
}

func Default() Config {
	return Config{
		RoundSeconds:  60,
		GuesserPoints: 10,
		DrawerPoints:  5,
		WSRateLimit:   20,
		WSRateBurst:   40,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("ROUND_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.RoundSeconds = value
		}
	}
	if raw := os.Getenv("GUESSER_POINTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.GuesserPoints = value
		}
	}
	if raw := os.Getenv("DRAWER_POINTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DrawerPoints = value
		}
	}
	if raw := os.Getenv("WS_RATE_LIMIT"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value > 0 {
			cfg.WSRateLimit = value
		}
	}
	if raw := os.Getenv("WS_RATE_BURST"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.WSRateBurst = value
		}
	}
	return cfg
}
