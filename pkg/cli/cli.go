// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"sort"

	"github.com/shayne/yargs"
)

const ProgramName = "bindargs"

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
	// ArgsSchema optionally defines positional args via `pos` tags.
	ArgsSchema any
	// NeedsTarget reports whether the command inspects the argv after "--".
	NeedsTarget bool
	// NeedsSchema reports whether the command fails without --schema.
	NeedsSchema bool
}

// GlobalFlags are accepted anywhere before "--".
type GlobalFlags struct {
	Config  string `flag:"config" help:"Path to a .bindargs.toml file (default: search upward from the working directory)"`
	Schema  string `flag:"schema" short:"s" help:"Command schema file (.toml, .yaml or .yml)"`
	Format  string `flag:"format" short:"f" help:"Output format: text, json, yaml or env"`
	Grammar string `flag:"grammar" help:"Subcommand grammar: nested or marker"`
	NoColor bool   `flag:"no-color" help:"Disable colored output"`
	Verbose bool   `flag:"verbose" short:"v" help:"Log every token to stderr"`
}

type CheckFlags struct {
	Raw     bool
	EnvFile string
}

type checkFlagsParsed struct {
	Raw     bool   `flag:"raw" help:"Print the tree as typed instead of with canonical names"`
	EnvFile string `flag:"env-file" help:"Also write the tree as KEY=value lines to this file"`
}

type TreeFlags struct {
	HelpPath bool
}

type treeFlagsParsed struct {
	HelpPath bool `flag:"help-path" help:"Print only the path a help flag was attached to"`
}

// UsageArgs names the command whose help to print, below the root.
type UsageArgs struct {
	Path []string `pos:"0*" help:"Subcommand path below the schema root"`
}

var commandInfos = map[string]CommandInfo{
	"tokens": {
		Name:        "tokens",
		Description: "Show how each argument of PROGRAM ARGV is classified",
		Usage:       "-- PROGRAM [ARGV...]",
		Examples: []string{
			"bindargs tokens -- git --verbose remote -l=3",
			"bindargs tokens --grammar=marker -- tool @sync --dry-run src",
		},
		Aliases:     []string{"lex"},
		NeedsTarget: true,
	},
	"tree": {
		Name:        "tree",
		Description: "Group PROGRAM ARGV into one node per subcommand level",
		Usage:       "[--help-path] -- PROGRAM [ARGV...]",
		Examples: []string{
			"bindargs tree -- git --verbose remote --level=3 add origin",
			"bindargs tree --format=env -- git remote --level=3",
		},
		NeedsTarget: true,
	},
	"check": {
		Name:        "check",
		Description: "Validate PROGRAM ARGV against a schema and print it with canonical names",
		Usage:       "--schema FILE [--raw] [--env-file FILE] -- PROGRAM [ARGV...]",
		Examples: []string{
			"bindargs check --schema=git.toml -- git -v r -l=3",
			"bindargs check --schema=git.yaml -- git remote --help",
			"bindargs check --schema=git.toml --env-file=args.env -- git remote -l=3",
		},
		Aliases:     []string{"validate"},
		NeedsTarget: true,
		NeedsSchema: true,
	},
	"usage": {
		Name:        "usage",
		Description: "Print schema help for a command path",
		Usage:       "--schema FILE [NAME...]",
		Examples: []string{
			"bindargs usage --schema=git.toml",
			"bindargs usage --schema=git.toml remote add",
		},
		ArgsSchema:  UsageArgs{},
		NeedsSchema: true,
	},
}

func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

func CommandRegistry() yargs.Registry {
	subcommands := make(map[string]yargs.CommandSpec, len(commandInfos))
	for name, info := range commandInfos {
		subcommands[name] = yargs.CommandSpec{
			Info:       toSubCommandInfo(name, info),
			ArgsSchema: info.ArgsSchema,
		}
	}
	return yargs.Registry{
		Command:     commandInfo(),
		SubCommands: subcommands,
	}
}

func HelpConfig() yargs.HelpConfig {
	return CommandRegistry().HelpConfig()
}

func commandInfo() yargs.CommandInfo {
	return yargs.CommandInfo{
		Name:        ProgramName,
		Description: "Inspect and validate command lines against a declarative command schema.",
		Examples: []string{
			"bindargs tokens -- git --verbose remote -l=3",
			"bindargs check --schema=git.toml -- git remote --level=3 add --url=x",
			"bindargs usage --schema=git.toml remote",
		},
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:            name,
		Description:     info.Description,
		Usage:           info.Usage,
		Examples:        info.Examples,
		Hidden:          info.Hidden,
		Aliases:         info.Aliases,
		LLMInstructions: "",
	}
}

func ParseGlobal(args []string) (GlobalFlags, []string, error) {
	result, err := yargs.ParseKnownFlags[GlobalFlags](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return GlobalFlags{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

func ParseCheck(args []string) (CheckFlags, []string, error) {
	parsed, err := parseFlags[checkFlagsParsed](stripCommand("check", args))
	if err != nil {
		return CheckFlags{}, nil, err
	}
	return CheckFlags{Raw: parsed.Flags.Raw, EnvFile: parsed.Flags.EnvFile}, parsed.Args, nil
}

func ParseTree(args []string) (TreeFlags, []string, error) {
	parsed, err := parseFlags[treeFlagsParsed](stripCommand("tree", args))
	if err != nil {
		return TreeFlags{}, nil, err
	}
	return TreeFlags{HelpPath: parsed.Flags.HelpPath}, parsed.Args, nil
}

func ParseUsage(args []string) ([]string, error) {
	parsed, err := parseFlags[struct{}](stripCommand("usage", args))
	if err != nil {
		return nil, err
	}
	return parsed.Args, nil
}

// stripCommand drops the subcommand name (or one of its aliases) that
// yargs passes through to handlers.
func stripCommand(name string, args []string) []string {
	if len(args) == 0 {
		return args
	}
	if args[0] == name {
		return args[1:]
	}
	for _, a := range commandInfos[name].Aliases {
		if args[0] == a {
			return args[1:]
		}
	}
	return args
}

type parsedFlags[T any] struct {
	Flags  T
	Args   []string
	Parser *yargs.Parser
}

func parseFlags[T any](args []string) (parsedFlags[T], error) {
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut, Parser: result.Parser}, nil
}

// SplitTarget splits the driver's own arguments from the argv to inspect at
// the first "--".
func SplitTarget(args []string) (own, target []string, ok bool) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}
