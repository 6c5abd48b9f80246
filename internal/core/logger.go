package core

// Logger receives diagnostic messages. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}

// DiscardLogger drops every message.
var DiscardLogger Logger = discardLogger{}

// OrDiscard returns l, or DiscardLogger when l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return DiscardLogger
	}
	return l
}
