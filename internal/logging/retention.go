package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const logFilePattern = "shelf-*.log"

// PruneLogs deletes dated shelf log files in dir whose modification time is
// older than retentionDays, never touching keep. It returns how many files
// were removed. retentionDays <= 0 disables pruning.
func PruneLogs(logger *slog.Logger, dir string, retentionDays int, keep string) int {
	if retentionDays <= 0 || dir == "" {
		return 0
	}
	matches, err := filepath.Glob(filepath.Join(dir, logFilePattern))
	if err != nil {
		return 0
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	removed := 0
	for _, path := range matches {
		if keep != "" && filepath.Clean(path) == filepath.Clean(keep) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			WarnWithContext(logger, "log retention remove failed; file remains", "log_retention_failed",
				String("path", path),
				Error(err),
				String(FieldErrorHint, "check permissions on logging.dir"),
				String(FieldImpact, "old log file remains on disk"))
			continue
		}
		removed++
	}
	if removed > 0 && logger != nil {
		logger.Debug("old logs pruned",
			String(FieldEventType, "log_pruned"),
			String("dir", dir),
			Int("count", removed))
	}
	return removed
}
