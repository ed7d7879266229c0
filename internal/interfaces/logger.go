package interfaces

// Logger defines a generic logging interface.
// keyvals are alternating keys and values. Passwords, salts and hashes must
// never be passed as values.
type Logger interface {
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
	Debug(msg string, keyvals ...any)
	SetLevel(level string)
	WithContext(ctx map[string]any) Logger
}
