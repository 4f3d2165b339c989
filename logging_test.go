package main

import (
	"bytes"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestCombinedWriter(t *testing.T) {
	var a, b bytes.Buffer
	w := newCombinedWriter(&a, &b)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}

func TestCombinedWriter_MergesErrors(t *testing.T) {
	var ok bytes.Buffer
	errDisk := errors.New("disk full")
	errPipe := errors.New("broken pipe")
	w := newCombinedWriter(failingWriter{errDisk}, &ok, failingWriter{errPipe})

	n, err := w.Write([]byte("line"))
	assert.Equal(t, 4, n, "healthy writers still receive the bytes")
	assert.Equal(t, "line", ok.String())

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, err, errPipe)
}

func TestGetLevel(t *testing.T) {
	tests := map[string]log.Level{
		"trace":   log.TraceLevel,
		"DEBUG":   log.DebugLevel,
		"info":    log.InfoLevel,
		"Warn":    log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"":        log.InfoLevel,
		"unknown": log.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, getLevel(in), in)
	}
}

func TestSetupLogging_StdoutOnly(t *testing.T) {
	prevLevel, prevFormatter, prevOut := log.GetLevel(), log.StandardLogger().Formatter, log.StandardLogger().Out
	t.Cleanup(func() {
		log.SetLevel(prevLevel)
		log.SetFormatter(prevFormatter)
		log.SetOutput(prevOut)
	})

	setupLogging(loggingParams{LogLevel: "debug", LogFormatJSON: true, LogToStdout: true})
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)
}
