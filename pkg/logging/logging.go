package logging

import (
	"github.com/sirupsen/logrus"
)

var DefaultLogger = initDefaultLogger()

func initDefaultLogger() *logrus.Logger {
	opts := defaultLogOpts()
	logger := logrus.New()
	logger.SetLevel(opts.level)
	logger.SetReportCaller(true)
	logger.SetFormatter(opts.format.LogrusFormat())
	logger.SetOutput(opts.output.Writer())
	return logger
}

func SetLogLevel(logLevel logrus.Level) {
	DefaultLogger.SetLevel(logLevel)
}

func SetLogLevelToDebug() {
	DefaultLogger.SetLevel(logrus.DebugLevel)
}

func SetLogFormat(format LogFormat) {
	DefaultLogger.SetFormatter(format.LogrusFormat())
}

func AddHooks(hooks ...logrus.Hook) {
	for _, hook := range hooks {
		DefaultLogger.AddHook(hook)
	}
}

// SetupLogging applies the options to DefaultLogger. The standard logrus
// logger is silenced so that only DefaultLogger and its entries emit.
func SetupLogging(logOpts ...LogOption) {
	opts := defaultLogOpts()
	for _, opt := range logOpts {
		opt(opts)
	}

	SetLogFormat(opts.format)
	DefaultLogger.SetOutput(opts.output.Writer())
	SetLogLevel(opts.level)

	logrus.SetLevel(logrus.PanicLevel)
}
