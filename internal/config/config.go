package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

var v = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("mines")
	v.AutomaticEnv()
	v.SetDefault("development", false)
	v.SetDefault("log_file", "")
	return v
}

// Params is the board every game is played on.
func Params() mines.GameParams {
	return mines.GameParams{Width: 8, Height: 8, MineCount: 8}
}

// LogFile is read from MINES_LOG_FILE. Empty means no log file.
func LogFile() string {
	return v.GetString("log_file")
}

// Seed is read from MINES_SEED. ok is false when it is unset.
func Seed() (seed uint64, ok bool, err error) {
	if !v.IsSet("seed") {
		return 0, false, nil
	}
	s := v.GetString("seed")
	seed, err = strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("MINES_SEED must be an unsigned integer, got %q", s)
	}
	return seed, true, nil
}
