package extension

import "log/slog"

// Recorder receives the outcome of every check performed by the extension.
type Recorder interface {
	ObserveCheck(rule string, passed bool)
}

// Option configures an Extension.
type Option func(*Extension)

// WithConfig overrides the tag names. The config is validated by New.
func WithConfig(cfg Config) Option {
	return func(e *Extension) { e.cfg = cfg }
}

// WithLogger sets the logger for registration messages. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extension) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecorder sets the outcome recorder. Nil is ignored.
func WithRecorder(r Recorder) Option {
	return func(e *Extension) {
		if r != nil {
			e.recorder = r
		}
	}
}
