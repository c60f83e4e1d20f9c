package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// L is the package-wide logger. Defaults to console output.
var (
	L              zerolog.Logger
	logFile        io.Closer
	consoleEnabled = true
	fileOutput     io.Writer
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	rebuildLogger()
}

func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// SetLogOutput redirects the logger to a file under path, creating the
// directory structure if needed. Console output stays on unless disabled
// via SetConsoleLogging.
func SetLogOutput(path string, filename string) error {
	if logFile != nil {
		logFile.Close()
	}

	if err := os.MkdirAll(path, 0750); err != nil {
		return err
	}

	logFilePath := filepath.Join(path, filename)
	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	logFile = file
	fileOutput = file
	rebuildLogger()
	L.Info().Msgf("writing logs to %s", logFilePath)

	return nil
}

func SetConsoleLogging(enabled bool) {
	consoleEnabled = enabled
	rebuildLogger()
}

func rebuildLogger() {
	var out io.Writer = os.Stdout
	if fileOutput != nil && consoleEnabled {
		out = io.MultiWriter(fileOutput, os.Stdout)
	} else if fileOutput != nil {
		out = fileOutput
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02T15:04:05.000000Z07:00",
	}

	L = zerolog.New(writer).With().Caller().Timestamp().Logger()
}

// Close releases the log file if one was opened.
func Close() error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
