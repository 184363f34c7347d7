package provision

// Logger is the structured logger used by the provisioner. It matches the
// method set of *github.com/charmbracelet/log.Logger.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// noopLogger is a Logger implementation that does nothing.
// This is the default logger used when none is provided.
type noopLogger struct{}

func (noopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (noopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (noopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (noopLogger) Error(msg interface{}, keyvals ...interface{}) {}

// fieldLogger prepends fixed key-value pairs to every entry.
type fieldLogger struct {
	next   Logger
	fields []interface{}
}

func withFields(l Logger, keyvals ...interface{}) Logger {
	return &fieldLogger{next: l, fields: keyvals}
}

func (l *fieldLogger) merge(keyvals []interface{}) []interface{} {
	out := make([]interface{}, 0, len(l.fields)+len(keyvals))
	out = append(out, l.fields...)
	return append(out, keyvals...)
}

func (l *fieldLogger) Debug(msg interface{}, keyvals ...interface{}) {
	l.next.Debug(msg, l.merge(keyvals)...)
}

func (l *fieldLogger) Info(msg interface{}, keyvals ...interface{}) {
	l.next.Info(msg, l.merge(keyvals)...)
}

func (l *fieldLogger) Warn(msg interface{}, keyvals ...interface{}) {
	l.next.Warn(msg, l.merge(keyvals)...)
}

func (l *fieldLogger) Error(msg interface{}, keyvals ...interface{}) {
	l.next.Error(msg, l.merge(keyvals)...)
}
