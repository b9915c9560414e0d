package cli

import (
	"errors"
	"fmt"

	"github.com/pamsartech/jytechinvestment-admin/internal/api"
)

// friendlyErr rewrites the auth sentinels into actionable messages before
// they reach the terminal.
func friendlyErr(err error) error {
	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		return fmt.Errorf("not logged in; run `jyadmin login`")
	case errors.Is(err, api.ErrSessionExpired):
		return fmt.Errorf("session expired; run `jyadmin login` again")
	default:
		return err
	}
}
