package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Terminal restore sequences written when a crash escapes a live viewer
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// emergencyReset puts the terminal back into a usable state after a panic
func emergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

func main() {
	// Panic Recovery: the live viewer holds the terminal in raw mode
	defer func() {
		if r := recover(); r != nil {
			emergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\nmazesolver crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(exitError)
		}
	}()

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command tree and maps the outcome to a process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitFound
	}
	var ee *exitCodeError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitError
}
