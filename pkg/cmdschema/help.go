// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdschema

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

// WriteHelp writes the description, usage line and parameter tables of cmd.
func WriteHelp(w io.Writer, cmd *Command) error {
	return writeHelp(w, cmd.Name(), cmd)
}

// WriteHelp writes help for the command that was asked about, with the full
// command path in the usage line.
func (h *HelpRequest) WriteHelp(w io.Writer) error {
	return writeHelp(w, strings.Join(h.Path, " "), h.Command)
}

// Usage returns the synopsis of the command that was asked about.
func (h *HelpRequest) Usage() string {
	return usage(strings.Join(h.Path, " "), h.Command)
}

// Usage returns the one-line synopsis of cmd.
func Usage(cmd *Command) string {
	return usage(cmd.Name(), cmd)
}

func usage(prog string, cmd *Command) string {
	var sb strings.Builder
	sb.WriteString("Usage: ")
	sb.WriteString(prog)
	for _, p := range cmd.props {
		if p.required {
			fmt.Fprintf(&sb, " %s=<value>", dashed(p.Name()))
		}
	}
	for _, p := range cmd.props {
		if !p.required {
			fmt.Fprintf(&sb, " [%s=<value>]", dashed(p.Name()))
		}
	}
	for _, f := range cmd.flags {
		fmt.Fprintf(&sb, " [%s]", dashed(f.Name()))
	}
	if len(cmd.commands) > 0 {
		sb.WriteString(" [COMMAND] [COMMAND ARGUMENTS]")
	}
	return sb.String()
}

func writeHelp(w io.Writer, prog string, cmd *Command) error {
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n\n", cmd.help, usage(prog, cmd)); err != nil {
		return err
	}

	if len(cmd.props) > 0 {
		rows := make([][2]string, 0, len(cmd.props))
		for _, p := range cmd.props {
			label := fmt.Sprintf("%s=<%s>", joinDashed(p.names), strings.ToUpper(p.Name()))
			rows = append(rows, [2]string{label, p.help})
		}
		if err := writeSection(w, "Props", rows); err != nil {
			return err
		}
	}
	if len(cmd.flags) > 0 {
		rows := make([][2]string, 0, len(cmd.flags))
		for _, f := range cmd.flags {
			rows = append(rows, [2]string{joinDashed(f.names), f.help})
		}
		if err := writeSection(w, "Flags", rows); err != nil {
			return err
		}
	}
	if len(cmd.commands) > 0 {
		rows := make([][2]string, 0, len(cmd.commands))
		for _, sub := range cmd.commands {
			rows = append(rows, [2]string{strings.Join(sub.names, "/"), sub.help})
		}
		if err := writeSection(w, "Commands", rows); err != nil {
			return err
		}
	}
	return nil
}

func writeSection(w io.Writer, title string, rows [][2]string) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 5, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "    %s\t%s\n", r[0], r[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// dashed spells name the way it is typed: "-v" for one rune, "--verbose"
// otherwise.
func dashed(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

func joinDashed(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = dashed(n)
	}
	return strings.Join(out, "/")
}
