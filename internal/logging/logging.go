// Package logging builds the zerolog logger shared by all app modes
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Unknown levels fall back to info;
// levels above error are clamped to error so failures always reach w.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if lvl > zerolog.ErrorLevel {
		lvl = zerolog.ErrorLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
