// Package logger provides the process-wide structured logger used by the CLI,
// the REST API and the services behind them.
package logger
