package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	lox "github.com/philip-gillespie/pylox"
)

const (
	appName     = "pylox"
	historyFile = ".pylox_history"
	promptMain  = "> "
)

var errColor = color.New(color.FgRed)

func usage() {
	fmt.Printf(`pylox %s

Usage:
  %s [file.lox]      Run a script, or start the REPL when no file is given.

Options:
  -a    Print the parsed AST instead of executing
  -v    Print the version
  -h    Show this help

`, lox.Version, appName)
}

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "avh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		usage()
		os.Exit(2)
	}
	showAST := false
	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			showAST = true
		case 'v':
			fmt.Println(lox.Version)
			return
		case 'h':
			usage()
			return
		}
	}

	args := os.Args[optind:]
	switch len(args) {
	case 0:
		os.Exit(runPrompt(showAST))
	case 1:
		os.Exit(runFile(args[0], showAST))
	default:
		usage()
		os.Exit(2)
	}
}

func runFile(path string, showAST bool) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	ip := lox.NewInterpreter(nil)
	_, code := run(ip, string(src), lox.NewGlobals(), showAST)
	return code
}

// run pushes one source string through the whole pipeline. It returns the
// environment that execution produced (unchanged when scanning or parsing
// failed) so the REPL can carry state across lines.
func run(ip *lox.Interpreter, src string, env *lox.Environment, showAST bool) (*lox.Environment, int) {
	tokens, err := lox.Scan(src)
	if err != nil {
		report(err, src)
		return env, 1
	}

	stmts, perrs := lox.Parse(tokens)
	if len(perrs) > 0 {
		// Synchronization already skipped past each bad statement; report
		// them all rather than stopping at the first.
		for _, pe := range perrs {
			report(pe, src)
		}
		return env, 1
	}

	if showAST {
		for _, st := range stmts {
			fmt.Println(lox.FormatStmt(st))
		}
		return env, 0
	}

	next, err := ip.Interpret(stmts, env)
	if err != nil {
		report(err, src)
		return next, 1
	}
	return next, 0
}

func report(err error, src string) {
	errColor.Fprintln(os.Stderr, lox.WrapWithSource(err, src))
}

func runPrompt(showAST bool) int {
	fmt.Printf("pylox %s\nCtrl+C cancels input, Ctrl+D exits.\n", lox.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	ip := lox.NewInterpreter(nil)
	env := lox.NewGlobals()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		env, _ = run(ip, line, env, showAST)
	}
}
