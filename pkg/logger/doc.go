// Package logger builds *slog.Logger instances from functional options and
// wraps their handler with a decorator that injects attributes pulled from
// context.Context on every record.
//
// Options select the output format (json or text), level, destination and
// static attributes. WithConfig applies a Config loaded from LOG_LEVEL and
// LOG_FORMAT. Attribute helpers (ObjectID, Model, Rule, Error, Errors, Group)
// keep key names consistent; they return an empty Attr for empty input, which
// slog drops.
//
// # Usage
//
//	var cfg logger.Config
//	_ = config.Load(&cfg)
//	log := logger.New(logger.WithConfig(cfg), logger.WithOutput(os.Stderr))
//	log.Debug("checked", logger.Rule("objectid"), logger.ObjectID(id))
package logger
