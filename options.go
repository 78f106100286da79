package wcap

import "github.com/sirupsen/logrus"

type loadOptions struct {
	binder Binder
	log    logrus.FieldLogger
}

type LoadOption func(*loadOptions)

// WithBinder overrides how resolved addresses become Go functions.
func WithBinder(b Binder) LoadOption {
	return func(o *loadOptions) {
		if b != nil {
			o.binder = b
		}
	}
}

func WithLogger(l logrus.FieldLogger) LoadOption {
	return func(o *loadOptions) {
		if l != nil {
			o.log = l
		}
	}
}

func defaultLoadOpts() *loadOptions {
	return &loadOptions{
		binder: CBinder,
		log:    log,
	}
}
