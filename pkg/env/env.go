// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders a parsed command line as KEY=value lines that a shell
// script can source.
//
// Every key starts with the program name followed by the subcommand path:
//
//	git --verbose remote --level=3
//
// becomes
//
//	GIT_REMOTE_LEVEL=3
//	GIT_VERBOSE=1
package env

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yeetrun/bindargs/pkg/argtree"
)

// defaultPrefix names the root when the program name is empty.
const defaultPrefix = "ARGS"

// Write writes an environment file with the given name and content.
func Write(name string, node *argtree.Node) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := Marshal(f, node); err != nil {
		return fmt.Errorf("failed to marshal env: %v", err)
	}
	return f.Close()
}

// ErrKeyCollision is returned by Marshal when two arguments map to the same
// key.
var ErrKeyCollision = errors.New("env: key collision")

type entry struct {
	value  string
	source string
}

// Marshal writes one line per flag, prop and operand of every node, sorted by
// key. Flags are written as 1 and operands as PREFIX_ARG<n>. Nothing is
// written if two arguments map to the same key.
func Marshal(w io.Writer, node *argtree.Node) error {
	lines := make(map[string]entry)
	add := func(key, value, source string) error {
		if prev, ok := lines[key]; ok {
			return fmt.Errorf("%w: %s: %s and %s", ErrKeyCollision, key, prev.source, source)
		}
		lines[key] = entry{value: value, source: source}
		return nil
	}
	var prefix string
	for cur := node; cur != nil; cur = cur.Sub {
		if cur == node {
			prefix = Key(filepath.Base(cur.Name))
			if cur.Name == "" {
				prefix = defaultPrefix
			}
		} else {
			prefix += "_" + Key(cur.Name)
		}
		for _, name := range cur.SortedFlags() {
			if err := add(prefix+"_"+Key(name), "1", fmt.Sprintf("flag %q of %q", name, cur.Name)); err != nil {
				return err
			}
		}
		for _, name := range cur.SortedProps() {
			if err := add(prefix+"_"+Key(name), cur.Props[name], fmt.Sprintf("option %q of %q", name, cur.Name)); err != nil {
				return err
			}
		}
		for i, a := range cur.Args {
			if err := add(fmt.Sprintf("%s_ARG%d", prefix, i), a, fmt.Sprintf("operand %d of %q", i, cur.Name)); err != nil {
				return err
			}
		}
	}
	for _, k := range slices.Sorted(maps.Keys(lines)) {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, quote(lines[k].value)); err != nil {
			return err
		}
	}
	return nil
}

// Key turns an argument name into an environment variable name: upper case,
// with every character outside [A-Z0-9_] replaced by an underscore.
func Key(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, name)
}

// quote leaves plain values bare and single-quotes anything a shell would
// split or expand.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n\"'\\$`;&|<>()*?[]#~") {
		return v
	}
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}
