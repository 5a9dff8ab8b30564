package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide structured logger. The engine packages never
// touch it; only the service and network layers log.
var Log = zap.NewNop()

func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}
