package logging

import "log/slog"

// WithComponent tags log records with the subsystem that produced them.
func WithComponent(name string) *slog.Logger {
	return GetLogger().With("component", name)
}

// WithTable tags log records with the table they concern.
func WithTable(name string) *slog.Logger {
	return GetLogger().With("table", name)
}
