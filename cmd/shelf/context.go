package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"shelf/internal/catalog"
	"shelf/internal/config"
	"shelf/internal/logging"
	"shelf/internal/store"
)

type commandContext struct {
	configFlag *string
	storeFlag  *string
	formatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	sessionID  string
}

func newCommandContext(configFlag, storeFlag, formatFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		storeFlag:  storeFlag,
		formatFlag: formatFlag,
		sessionID:  uuid.NewString(),
	}
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.ApplyStoreOverrides(flagValue(c.storeFlag), flagValue(c.formatFlag)); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// sessionLogger returns the file logger for this invocation. Logging problems
// never block catalog work, so failures fall back to a no-op logger.
func (c *commandContext) sessionLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.sessionID)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
		logging.PruneLogs(logger, cfg.Logging.Dir, cfg.Logging.RetentionDays,
			logging.LogFilePath(cfg.Logging.Dir, time.Now()))
	})
	return c.logger
}

// session is one locked, loaded view of the catalog.
type session struct {
	cfg     *config.Config
	library *catalog.Library
	lock    *store.Lock
	logger  *slog.Logger
	// loadErr holds the recoverable load failure, if any.
	loadErr error
}

func (c *commandContext) openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := c.sessionLogger().With(logging.String(logging.FieldCommand, cmd.Name()))

	persister, err := store.ForConfig(cfg)
	if err != nil {
		return nil, err
	}

	lock, err := store.Acquire(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:     cfg,
		library: catalog.New(persister, logger),
		lock:    lock,
		logger:  logger,
	}
	if err := s.library.Load(commandCtx(cmd), cfg.Store.Path); err != nil {
		if errors.Is(err, context.Canceled) {
			s.close()
			return nil, err
		}
		s.loadErr = err
	}
	return s, nil
}

func (s *session) save(ctx context.Context) error {
	return s.library.Save(ctx, s.cfg.Store.Path)
}

func (s *session) close() {
	if err := s.lock.Release(); err != nil {
		logging.WarnWithContext(s.logger, "store lock release failed", "store_lock_release_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the .lock file if no shelf session is running"))
	}
}

// withSession runs fn against a freshly loaded catalog and saves the result
// when persist is true and fn succeeds. A missing store counts as an empty
// catalog; an unreadable one aborts so a one-shot command cannot overwrite it.
func (c *commandContext) withSession(cmd *cobra.Command, persist bool, fn func(*session) error) error {
	s, err := c.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if errors.Is(s.loadErr, catalog.ErrStoreCorrupt) {
		return fmt.Errorf("library data at %s is unreadable; fix or move it before running %s: %w", s.cfg.Store.Path, cmd.Name(), s.loadErr)
	}

	if err := fn(s); err != nil {
		return err
	}
	if !persist {
		return nil
	}
	if err := s.save(commandCtx(cmd)); err != nil {
		return fmt.Errorf("%s: %w", catalog.Message(err), err)
	}
	return nil
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// userError turns a catalog error into the message shown to the user.
func userError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(catalog.Message(err))
}
