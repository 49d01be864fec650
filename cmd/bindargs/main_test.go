// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const gitSchema = `version = "1.0.0"

[command]
name = "git"
help = "the stupid content tracker"

[[command.flags]]
name = "verbose"
aliases = ["v"]

[[command.commands]]
name = "remote"
aliases = ["r"]
help = "manage remotes"

[[command.commands.props]]
name = "level"
aliases = ["l"]
required = true

[[command.commands.commands]]
name = "add"
help = "add a remote"
`

// runCLI runs bindargs in a fresh directory holding git.toml and returns the
// exit status with everything written to stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "git.toml"), gitSchema)

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd error: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir error: %v", err)
	}
	oldOut, oldErr, oldIsTerminal := stdout, stderr, isTerminalFn
	var outBuf, errBuf bytes.Buffer
	stdout, stderr = &outBuf, &errBuf
	isTerminalFn = func(int) bool { return false }
	defer func() {
		_ = os.Chdir(oldWD)
		stdout, stderr, isTerminalFn = oldOut, oldErr, oldIsTerminal
	}()

	code := run(context.Background(), args)
	return code, outBuf.String(), errBuf.String()
}

func TestRunCheck(t *testing.T) {
	code, out, errOut := runCLI(t, "--schema", "git.toml", "check", "--", "git", "-v", "r", "-l=3", "--", "x")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
	want := "git --verbose\n└── remote --level=3\n-- x\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRunCheckRaw(t *testing.T) {
	code, out, _ := runCLI(t, "-s", "git.toml", "check", "--raw", "--", "git", "-v", "r", "-l=3")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if want := "git -v\n└── r -l=3\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRunCheckRejects(t *testing.T) {
	tests := []struct {
		argv []string
		want string
	}{
		{[]string{"git", "remote"}, "invalid arguments: missing required option 'level'\n"},
		{[]string{"git", "push"}, "invalid arguments: push is not a valid command\n"},
		{[]string{"git", "--x"}, "syntax error: '--x' is not a valid flag\n"},
	}
	for _, tt := range tests {
		args := append([]string{"--schema=git.toml", "check", "--"}, tt.argv...)
		code, out, _ := runCLI(t, args...)
		if code != 1 {
			t.Errorf("%q: exit = %d, want 1", tt.argv, code)
		}
		if out != tt.want {
			t.Errorf("%q: stdout = %q, want %q", tt.argv, out, tt.want)
		}
	}
}

func TestRunCheckHelp(t *testing.T) {
	code, out, _ := runCLI(t, "--schema=git.toml", "check", "--", "git", "r", "-h")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.HasPrefix(out, "manage remotes\n\nUsage: git remote --level=<value> [COMMAND] [COMMAND ARGUMENTS]\n") {
		t.Fatalf("unexpected help:\n%s", out)
	}
}

func TestRunCheckJSONError(t *testing.T) {
	code, out, _ := runCLI(t, "--schema=git.toml", "--format=json", "check", "--", "git", "remote")
	if code != 1 {
		t.Fatalf("exit = %d", code)
	}
	var doc struct {
		Category string `json:"category"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("unmarshal error: %v (%q)", err, out)
	}
	if doc.Category != "invalid" || doc.Error != "missing required option 'level'" {
		t.Fatalf("unexpected error doc: %+v", doc)
	}
}

func TestRunMisuse(t *testing.T) {
	tests := [][]string{
		{"tokens"},
		{"check", "--", "git"},
		{"--format=xml", "tokens", "--", "git"},
		{"tree", "extra", "--", "git"},
		{"--schema=git.toml", "usage", "push"},
		{"--schema=missing.toml", "usage"},
	}
	for _, args := range tests {
		code, out, errOut := runCLI(t, args...)
		if code != 2 {
			t.Errorf("%q: exit = %d, want 2", args, code)
		}
		if out != "" || errOut == "" {
			t.Errorf("%q: stdout = %q, stderr = %q", args, out, errOut)
		}
	}
}

func TestRunUsageErrorPrefix(t *testing.T) {
	_, _, errOut := runCLI(t, "tokens")
	if !strings.HasPrefix(errOut, "usage: tokens needs a command line") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestRunTokens(t *testing.T) {
	code, out, _ := runCLI(t, "lex", "--", "git", "--verbose", "remote")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	var lines [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		lines = append(lines, strings.Fields(line))
	}
	if len(lines) != 4 || lines[2][0] != "flag" || lines[3][0] != "operand" {
		t.Fatalf("unexpected tokens output:\n%s", out)
	}
}

func TestRunTreeHelpPath(t *testing.T) {
	code, out, _ := runCLI(t, "tree", "--help-path", "--", "git", "remote", "--help", "add")
	if code != 0 || out != "git remote\n" {
		t.Fatalf("exit = %d, stdout = %q", code, out)
	}

	code, out, _ = runCLI(t, "tree", "--help-path", "--", "git", "remote")
	if code != 1 || out != "" {
		t.Fatalf("without help: exit = %d, stdout = %q", code, out)
	}
}

func TestRunTreeMarkerGrammar(t *testing.T) {
	code, out, _ := runCLI(t, "--grammar=marker", "tree", "--", "tool", "@sync", "src")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if want := "tool\n└── sync src\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRunUsage(t *testing.T) {
	code, out, _ := runCLI(t, "--schema=git.toml", "usage", "r", "add")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.HasPrefix(out, "add a remote\n\nUsage: git remote add\n") {
		t.Fatalf("unexpected usage:\n%s", out)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schemas", "git.toml"), gitSchema)
	cfg := filepath.Join(dir, configFileName)
	writeFile(t, cfg, "schema = \"schemas/git.toml\"\nformat = \"env\"\n")

	code, out, errOut := runCLI(t, "--config", cfg, "check", "--", "git", "-v", "r", "--level=2")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
	if want := "GIT_REMOTE_LEVEL=2\nGIT_VERBOSE=1\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRunCheckEnvFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args.env")
	code, _, errOut := runCLI(t, "--schema=git.toml", "check", "--env-file", out, "--", "git", "r", "-l=3")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if got, want := string(b), "GIT_REMOTE_LEVEL=3\n"; got != want {
		t.Fatalf("env file = %q, want %q", got, want)
	}
}
