package logger

import "go.uber.org/zap"

// New builds the process-wide structured logger. Components receive it
// through their constructors; there is no package-level global.
func New() (*zap.Logger, error) {
	return zap.NewProduction()
}
