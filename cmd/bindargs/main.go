// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bindargs inspects and validates command lines against a
// declarative command schema.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/bindargs/pkg/argbag"
	"github.com/yeetrun/bindargs/pkg/argtree"
	"github.com/yeetrun/bindargs/pkg/cli"
	"github.com/yeetrun/bindargs/pkg/cmdschema"
	"github.com/yeetrun/bindargs/pkg/env"
	"github.com/yeetrun/bindargs/pkg/schemafile"
	"golang.org/x/term"
)

var (
	// target is the argv after the first "--", if there was one.
	target    []string
	hasTarget bool
	opts      settings

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var isTerminalFn = term.IsTerminal

// errRejected means the inspected command line was refused and the reason
// has already been printed.
var errRejected = errors.New("command line rejected")

// usageError is a mistake in how bindargs itself was invoked.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) errorPrefix() string { return "usage: " }

type errorPrefixer interface {
	errorPrefix() string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run executes one invocation and returns the exit status: 0 on success,
// 1 when the inspected command line was rejected, 2 when bindargs itself
// was misused.
func run(ctx context.Context, args []string) int {
	own, argv, ok := cli.SplitTarget(args)
	target, hasTarget = argv, ok

	globalFlags, remaining, err := cli.ParseGlobal(own)
	if err != nil {
		printCLIError(stderr, err)
		return 2
	}
	wd, err := os.Getwd()
	if err != nil {
		printCLIError(stderr, err)
		return 2
	}
	loc, err := loadConfig(globalFlags.Config, wd)
	if err != nil {
		printCLIError(stderr, err)
		return 2
	}
	opts, err = resolveSettings(globalFlags, loc, isTerminalFn(int(os.Stdout.Fd())))
	if err != nil {
		printCLIError(stderr, err)
		return 2
	}

	helpConfig := cli.HelpConfig()
	remaining = yargs.ApplyAliases(remaining, helpConfig)

	handlers := map[string]yargs.SubcommandHandler{
		"tokens": handleTokens,
		"tree":   handleTree,
		"check":  handleCheck,
		"usage":  handleUsage,
	}
	if err := yargs.RunSubcommands(ctx, remaining, helpConfig, cli.GlobalFlags{}, handlers); err != nil {
		if errors.Is(err, errRejected) {
			return 1
		}
		printCLIError(stderr, err)
		return 2
	}
	return 0
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var pref errorPrefixer
	if errors.As(err, &pref) {
		if prefix := pref.errorPrefix(); prefix != "" {
			fmt.Fprint(w, prefix)
		}
	}
	fmt.Fprintln(w, err)
}

func requireTarget(cmd string) error {
	if !hasTarget {
		return &usageError{msg: fmt.Sprintf("%s needs a command line after \"--\": bindargs %s -- PROGRAM [ARGV...]", cmd, cmd)}
	}
	return nil
}

func requireNoArgs(cmd string, args []string) error {
	if len(args) > 0 {
		return &usageError{msg: fmt.Sprintf("%s takes no arguments before \"--\", got %s", cmd, strings.Join(args, " "))}
	}
	return nil
}

func loadSchema(cmd string) (*cmdschema.Command, error) {
	if opts.schemaPath == "" {
		return nil, &usageError{msg: fmt.Sprintf("%s needs --schema FILE or a schema key in %s", cmd, configFileName)}
	}
	return schemafile.LoadCommand(opts.schemaPath)
}

// reject prints why the inspected command line was refused.
func reject(err error) error {
	if perr := opts.printer.Error(stdout, err); perr != nil {
		return perr
	}
	return errRejected
}

func handleTokens(_ context.Context, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	if err := requireNoArgs("tokens", args); err != nil {
		return err
	}
	if err := requireTarget("tokens"); err != nil {
		return err
	}
	bag, err := argbag.ParseOptions(target, opts.parse)
	if err != nil {
		return reject(err)
	}
	return opts.printer.Tokens(stdout, bag)
}

func handleTree(_ context.Context, args []string) error {
	flags, rest, err := cli.ParseTree(args)
	if err != nil {
		return err
	}
	if err := requireNoArgs("tree", rest); err != nil {
		return err
	}
	if err := requireTarget("tree"); err != nil {
		return err
	}
	root, trailing, err := argtree.Parse(target, opts.parse)
	if err != nil {
		return reject(err)
	}
	if flags.HelpPath {
		path, ok := argtree.HelpPath(root)
		if !ok {
			return errRejected
		}
		_, err := fmt.Fprintln(stdout, strings.Join(path, " "))
		return err
	}
	return opts.printer.Tree(stdout, root, trailing)
}

func handleCheck(_ context.Context, args []string) error {
	flags, rest, err := cli.ParseCheck(args)
	if err != nil {
		return err
	}
	if err := requireNoArgs("check", rest); err != nil {
		return err
	}
	if err := requireTarget("check"); err != nil {
		return err
	}
	cmd, err := loadSchema("check")
	if err != nil {
		return err
	}
	inv, err := cmd.ParseOptions(target, opts.parse)
	var help *cmdschema.HelpRequest
	switch {
	case errors.As(err, &help):
		return opts.printer.Help(stdout, help)
	case err != nil:
		return reject(err)
	}
	tree := inv.Args
	if flags.Raw {
		tree = inv.Raw
	}
	if err := opts.printer.Tree(stdout, tree, inv.Trailing); err != nil {
		return err
	}
	if flags.EnvFile != "" {
		return env.Write(flags.EnvFile, tree)
	}
	return nil
}

func handleUsage(_ context.Context, args []string) error {
	names, err := cli.ParseUsage(args)
	if err != nil {
		return err
	}
	if hasTarget {
		return &usageError{msg: "usage does not inspect a command line; drop the \"--\""}
	}
	cmd, err := loadSchema("usage")
	if err != nil {
		return err
	}
	path := append([]string{cmd.Name()}, names...)
	def, resolved := cmd.Find(path)
	if len(resolved) != len(path) {
		return &cmdschema.UnrecognizedArgumentError{Name: path[len(resolved)], Kind: cmdschema.KindCommand}
	}
	return opts.printer.Help(stdout, &cmdschema.HelpRequest{Path: resolved, Command: def})
}
