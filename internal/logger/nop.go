// Package logger holds the logger used when NewBot gets no WithLogger option.
package logger

import "github.com/Willfwalker/Discord-Bot/types"

// NopLogger drops every entry.
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop returns a logger that drops every entry.
//
// Example:
//
//	session, err := discord.New(token, discord.WithLogger(logger.NewNop()))
func NewNop() *NopLogger {
	return &NopLogger{}
}

func (*NopLogger) Debug(string, ...any) {}
func (*NopLogger) Info(string, ...any) {}
func (*NopLogger) Warn(string, ...any) {}
func (*NopLogger) Error(string, ...any) {}

// Fatal drops the entry. It never exits the process.
func (*NopLogger) Fatal(string, ...any) {}
