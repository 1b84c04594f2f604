package model

// Logger abstracts progress output so callers can route it wherever they want
type Logger interface {
	Printf(format string, args ...interface{})
}
