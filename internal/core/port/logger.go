package port

type Fields map[string]interface{}

// LoggerPort abstracts structured logging so the core never depends on a
// concrete logging backend.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)
	WithFields(fields Fields) LoggerPort
}
