package logging

import (
	"flag"

	"github.com/spf13/viper"
)

const (
	namespace          = "log"
	levelFlag          = namespace + ".level"
	formatFlag         = namespace + ".format"
	outputAsStdoutFlag = namespace + ".output-as-stdout"
)

func RegisterFlags(fs *flag.FlagSet) {
	opts := defaultLogOpts()
	fs.String(levelFlag, opts.level.String(), "Log level. Available options: panic, fatal, error, info (default), warn (or warning), debug and trace.")
	fs.String(formatFlag, string(opts.format), "Log output format. Available options: text (default), json.")
	fs.Bool(outputAsStdoutFlag, false, "If enable, logs are written to stdout. Otherwise, logs go to stderr.")
}

func SetupLoggingWithViper(v *viper.Viper) {
	opts := []LogOption{
		WithLogFormat(LogFormat(v.GetString(formatFlag))),
		WithLogLevel(v.GetString(levelFlag)),
	}
	if !v.GetBool(outputAsStdoutFlag) {
		opts = append(opts, WithLogOutputAsStderr())
	} else {
		opts = append(opts, func(lo *LogOptions) { lo.output = LogOutputStdout })
	}
	SetupLogging(opts...)
}
