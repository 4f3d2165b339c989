package main

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

type loggingParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
}

var logLevels = map[string]log.Level{
	"trace": log.TraceLevel,
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

// setupLogging configures the global logrus logger. Without a file name logs
// go to stdout only; with one they rotate through lumberjack.
func setupLogging(params loggingParams) {
	if params.LogFormatJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	log.SetLevel(getLevel(params.LogLevel))

	if params.LogFileName == "" {
		log.SetOutput(os.Stdout)
		log.Debugln("writing logs only to STDOUT")
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:  params.LogFileName,
		MaxSize:   50, // megabytes
		LocalTime: true,
		Compress:  true,
	}

	if params.LogToStdout {
		log.SetOutput(newCombinedWriter(os.Stdout, fileLogger))
		log.Debugln("writing logs to file and STDOUT")
	} else {
		log.SetOutput(fileLogger)
	}
}

// getLevel falls back to info for unknown names; config validation rejects
// those before we get here.
func getLevel(level string) log.Level {
	if l, ok := logLevels[strings.ToLower(level)]; ok {
		return l
	}
	return log.InfoLevel
}

// combinedWriter fans a write out to every writer and merges their errors.
type combinedWriter struct {
	writers []io.Writer
}

func newCombinedWriter(writers ...io.Writer) *combinedWriter {
	return &combinedWriter{writers: writers}
}

func (cw *combinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n = max(n, written)
	}
	return n, err
}
