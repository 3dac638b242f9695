package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=3001"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	AllowedOrigin        string        `env:"ALLOWED_ORIGIN,default=*"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,default=./data/alerts"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
	ReapInterval         time.Duration `env:"REAP_INTERVAL,default=60s"`
	IdleThreshold        time.Duration `env:"IDLE_THRESHOLD,default=300s"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=30s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	EmotionThreshold     float64       `env:"EMOTION_THRESHOLD,default=0.8"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	AlertListLimit       int           `env:"ALERT_LIST_LIMIT,default=50"`
	// JWTSecret ships with a development default; production loads it from
	// the environment or a secret manager.
	JWTSecret         string        `env:"JWT_SECRET,default=dev_only_change_me_2026"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

// CharacterRune ensures the censor replacement is exactly one character.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
