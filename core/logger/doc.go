// Package logger records what happens in an interactive shell session as
// newline delimited JSON events, and summarizes those events into reports.
package logger
