package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// crashHook restores the host environment before the process dies.
// Set once at startup (e.g. to tcell's screen Fini) so a panic inside
// a goroutine does not leave the terminal in raw mode.
var crashHook func()

// SetCrashHook installs the cleanup function invoked on panic
func SetCrashHook(fn func()) {
	crashHook = fn
}

// HandleCrash is the unified panic handler that runs the crash hook and
// prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashHook != nil {
		crashHook()
	}

	fmt.Fprintf(os.Stderr, "\r\ncrash: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "stack trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword for long-lived loops so the
// terminal is cleaned up on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
