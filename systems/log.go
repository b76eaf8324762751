package systems

import "log/slog"

var logger = slog.Default()

// SetLogger replaces the logger used for behavior transitions and warnings.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}
