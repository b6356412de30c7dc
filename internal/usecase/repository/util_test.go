package repository

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

var errInternal = errors.New("internal error")

func newTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	return logger
}
