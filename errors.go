// dwmgo
package main

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	log "github.com/sirupsen/logrus"
)

// errPolicy is the outcome of classifying an X protocol error, per spec
// §7.2: a known-safe race is ignored; anything else is forwarded (in this
// rewrite: logged and, for the default handler, treated as fatal — there
// is no "previously-saved Xlib default handler" to forward to in a Go
// rewrite, so fatal is the closest equivalent of "typically terminates").
type errPolicy int

const (
	errIgnore errPolicy = iota
	errFatal
)

// classifyXError inspects the concrete type jezek/xgb decoded an async
// protocol error into. BadWindow is always a benign race (the window was
// destroyed between the request and the server processing it); Match,
// Drawable and Access errors are whitelisted too, since they arise from
// the same family of race in configure/grab/paint requests (spec §7.2's
// whitelist, restated as Go types instead of (request-code, error-code)
// pairs, since a typed error is what WaitForEvent hands back here).
func classifyXError(xerr xgb.Error) errPolicy {
	switch xerr.(type) {
	case xproto.WindowError, xproto.MatchError, xproto.DrawableError, xproto.AccessError:
		return errIgnore
	default:
		return errFatal
	}
}

// handleXError logs an asynchronous protocol error at a severity matching
// its classification. Called from run's single suspension point; there is
// no separate callback-based handler to install, since jezek/xgb already
// hands errors back inline from WaitForEvent rather than through Xlib's
// global-handler model.
func handleXError(xerr xgb.Error) {
	if classifyXError(xerr) == errIgnore {
		log.WithField("error", xerr).Debug("ignored X error")
		return
	}
	log.WithField("error", xerr).Fatal("unexpected X error")
}

// withErrorsIgnored runs fn, which issues one or more unchecked X
// requests against a window that may already be gone (unmanage's border
// restore, killclient's forced-kill path per spec §7.3). Those requests
// never surface a Go error locally; any resulting protocol error arrives
// later through the normal WaitForEvent path and is classified by
// handleXError same as any other, so this wrapper only marks the call
// sites where that race is expected; it suppresses nothing itself.
func withErrorsIgnored(wm *WM, fn func()) {
	fn()
}
