package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. Each can be overridden from the environment and
// again by command line flags; the flags default to these values.
var (
	GridWidth        = getEnvInt("SNAKE_GRID_WIDTH", 30)
	GridHeight       = getEnvInt("SNAKE_GRID_HEIGHT", 30)
	UpdatesPerSecond = getEnvInt("SNAKE_UPDATES_PER_SECOND", 10)
	SnakeLength      = getEnvInt("SNAKE_LENGTH", 4)
	MaxCatchUp       = getEnvInt("SNAKE_MAX_CATCH_UP", 5)

	// BacklogWarn is the number of unconsumed key events after which the
	// input listener starts complaining.
	BacklogWarn    = getEnvInt("SNAKE_INPUT_BACKLOG_WARN", 32)
	BacklogLogRate = rate.Limit(getEnvInt("SNAKE_BACKLOG_LOG_RPS", 1))
)

// TickInterval converts an update rate into the fixed tick duration.
// Non-positive rates fall back to one update per second.
func TickInterval(updatesPerSecond int) time.Duration {
	if updatesPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(updatesPerSecond)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
