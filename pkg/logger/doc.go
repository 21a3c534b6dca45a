// Package logger builds *slog.Logger values for the textmask command line
// tool and for embedding applications that want structured traces of mask
// updates.
//
// New assembles a handler from functional options: output format, minimum
// level, static attributes and ContextExtractor callbacks. Extractors run on
// every record, which lets a replay session tag all of its lines with the
// session name stored in the context.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("session", sessionKey{}),
//	)
//	log.DebugContext(ctx, "conformed", logger.Raw(raw), logger.Conformed(v), logger.Caret(pos))
//
// Attribute helpers in attr.go keep key names consistent between the binding
// and the CLI. Helpers that wrap optional values return an empty slog.Attr
// for nil input, which slog drops.
package logger
