package app

import (
	"os"

	"delivery-fee-service/internal/logx"
)

// NewLogger returns the JSON process logger writing to stdout.
func NewLogger(level string) logx.Logger {
	return logx.NewJSON(os.Stdout, level)
}
