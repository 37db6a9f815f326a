package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New 建立帶時間戳記的 logger；level 為空時預設 info
func New(level string, w io.Writer) (zerolog.Logger, error) {
	if level == "" {
		level = zerolog.LevelInfoValue
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
