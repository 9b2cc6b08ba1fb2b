// Package logging configures the structured logger used by the stablerand CLI.
//
// It wraps log/slog so every command builds its logger the same way:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel(cfg.LogLevel),
//	    Format: logging.ParseFormat(cfg.LogFormat),
//	})
//
//	logger.Debug("generator ready", "key", key, "seed", seed)
//
// Logs always go to stderr unless Output says otherwise, so command results on
// stdout can be piped into other tools.
//
// Library packages (stablerand, motif) never log. They return errors and
// leave reporting to the caller.
package logging
