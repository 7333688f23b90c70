package utils

import (
	"log"
	"testing"

	"go.uber.org/zap"
)

type TestWriter struct {
	t *testing.T
}

func (l *TestWriter) Write(p []byte) (n int, err error) {
	l.t.Log(string(p))
	return len(p), nil
}

func NewTestLogger(t *testing.T) *log.Logger {
	return log.New(&TestWriter{t: t}, "", 0)
}

// NewLogger builds the std logger the sdk threads through its components,
// backed by zap so the binaries keep structured output. The returned flush
// function should be deferred by the caller.
func NewLogger(debug bool) (*log.Logger, func() error, error) {
	var zl *zap.Logger
	var err error
	if debug {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, err
	}
	return zap.NewStdLog(zl), zl.Sync, nil
}
