package wikitable

import "github.com/sirupsen/logrus"

// Options holds configuration shared by Parser and Builder.
type Options struct {
	logger logrus.FieldLogger
}

// defaultOptions returns the default options.
func defaultOptions() Options {
	return Options{
		logger: logrus.StandardLogger(),
	}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return Options{
		logger: o.logger,
	}
}

// withLogger returns a copy using l, or the standard logger if l is nil.
func (o Options) withLogger(l logrus.FieldLogger) Options {
	newOpts := o.clone()
	if l == nil {
		l = logrus.StandardLogger()
	}
	newOpts.logger = l
	return newOpts
}
