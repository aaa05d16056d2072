package app

import (
	"log/slog"

	"github.com/treykane/md-cards/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// It is tagged with component "app". The level and destination come from
// MDCARDS_LOG_LEVEL and MDCARDS_LOG_FILE (see the logging package); point
// MDCARDS_LOG_FILE at a file while the editor runs so log lines do not land
// on the alternate screen.
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// simultaneously logs a structured error entry with full context.
//
// The status parameter is displayed verbatim in the footer, while the err
// and any additional key-value attrs are included only in the log entry.
//
// Usage:
//
//	m.setStatusError("Export failed", err, "format", format)
//	m.setStatusError("Clipboard copy failed", err)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
