// Package tui is the full-screen admin dashboard: one bubbletea program
// with a view per page, all list pages sharing the listview pipeline and
// the session-guarded API client.
package tui

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pamsartech/jytechinvestment-admin/internal/api"
	"github.com/pamsartech/jytechinvestment-admin/internal/config"
	"github.com/pamsartech/jytechinvestment-admin/internal/notify"
	"github.com/pamsartech/jytechinvestment-admin/internal/session"
)

// Run starts the dashboard. Logs go to a file under the config dir so the
// alt screen stays clean.
func Run(cfg config.Config, sess *session.Manager) error {
	logger := log.Default()
	dir, err := config.Dir()
	if err == nil {
		_ = os.MkdirAll(dir, 0o700)
		if f, ferr := os.OpenFile(filepath.Join(dir, "jyadmin.log"),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); ferr == nil {
			logger = log.New(f)
			defer f.Close()
		}
	}

	client := api.New(cfg, sess, logger)

	// Read-state is best-effort; the dashboard works without it.
	var notes *notify.Store
	if dir != "" {
		if s, err := notify.Open(context.Background(), dir); err == nil {
			notes = s
			defer s.Close()
		} else {
			logger.Warn("notification store unavailable", "err", err)
		}
	}

	m := newAppModel(client, notes)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
