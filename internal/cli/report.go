package cli

import (
	"fmt"
	"io"

	"github.com/open-lnk/open-lnk/internal/branding"
	"github.com/open-lnk/open-lnk/internal/logging"
	"github.com/open-lnk/open-lnk/internal/platform"
)

// reporter shows errors to the user. Stderr always gets the message; the
// desktop notification is best effort.
type reporter struct {
	stderr   io.Writer
	notifier platform.Notifier
	log      *logging.Logger
}

func (r *reporter) Report(msg string) {
	fmt.Fprintf(r.stderr, "%s: %s\n", branding.DisplayName(), msg)
	r.log.Debug().Str("message", msg).Msg("error reported")
	if r.notifier == nil {
		return
	}
	if err := r.notifier.Notify(branding.DisplayName(), msg); err != nil {
		r.log.Debugf("notification not shown: %v", err)
	}
}
