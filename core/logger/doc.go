// Package logger is a standardized event logging framework for shell sessions.
//
// Events are written as newline delimited JSON so they can be replayed into
// reports after the fact.
package logger
