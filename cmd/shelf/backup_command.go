package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shelf/internal/config"
	"shelf/internal/fileutil"
	"shelf/internal/logging"
)

func newBackupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [destination]",
		Short: "Copy the catalog file, by default into store.backup_dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(s *session) error {
				if s.loadErr != nil {
					return fmt.Errorf("nothing to back up: %w", s.loadErr)
				}

				var dest string
				if len(args) == 1 {
					expanded, err := config.ExpandPath(strings.TrimSpace(args[0]))
					if err != nil {
						return fmt.Errorf("resolve backup path: %w", err)
					}
					dest = expanded
					if info, err := os.Stat(dest); err == nil && info.IsDir() {
						dest = filepath.Join(dest, backupName(s.cfg.Store.Path, time.Now()))
					}
				} else {
					dest = filepath.Join(s.cfg.Store.BackupDir, backupName(s.cfg.Store.Path, time.Now()))
				}

				size, err := fileutil.CopyVerified(s.cfg.Store.Path, dest)
				if err != nil {
					return fmt.Errorf("backup catalog: %w", err)
				}
				s.logger.Info("catalog backed up",
					logging.String(logging.FieldEventType, "catalog_backup"),
					logging.String("source", s.cfg.Store.Path),
					logging.String("destination", dest),
					logging.Int("bytes", int(size)))
				fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d books to %s\n", s.library.Len(), dest)
				return nil
			})
		},
	}
}

// backupName stamps the store file name, e.g. library-20261018-153000.json.
func backupName(storePath string, now time.Time) string {
	base := filepath.Base(storePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s-%s%s", stem, now.Format("20060102-150405"), ext)
}
