// Package controller implements the per-page view controllers: small
// state machines coordinating load, edit, submit, and delete cycles on
// top of the vetapi services. Controllers own view state and talk to
// the presentation layer only through the Notifier, Prompter, and
// Navigator interfaces, so no presentation concern leaks into the data
// path and no controller performs network I/O outside the services.
package controller

import (
	"sync"
	"time"
)

// Notifier surfaces transient notifications to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Prompter asks the user to confirm a destructive action.
type Prompter interface {
	Confirm(question string) bool
}

// Navigator performs route changes on behalf of controllers.
type Navigator interface {
	NavigateTo(route string)
}

// Debounce wraps fn so that rapid successive calls produce at most one
// invocation per idle gap of the given delay. The wrapped function is
// called with the value of the last call. Used to throttle the owner
// search input.
func Debounce(delay time.Duration, fn func(string)) func(string) {
	var mu sync.Mutex
	var timer *time.Timer

	return func(value string) {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			fn(value)
		})
	}
}

// errMessage extracts a user-facing message from err, falling back when
// the error carries no text.
func errMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
