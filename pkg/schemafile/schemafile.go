// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile loads command definitions from TOML or YAML documents.
//
// A minimal TOML document:
//
//	version = "1.0.0"
//
//	[command]
//	name = "git"
//	help = "the stupid content tracker"
//
//	[[command.flags]]
//	name = "verbose"
//	aliases = ["v"]
//
//	[[command.commands]]
//	name = "remote"
//
//	[[command.commands.props]]
//	name = "level"
//	required = true
package schemafile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/bindargs/pkg/cmdschema"
	"gopkg.in/yaml.v3"
)

// SupportedVersions is the range of document versions this package reads.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

const defaultVersion = "1.0.0"

var (
	ErrUnknownFormat      = errors.New("unknown schema format")
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	ErrEmptyName          = errors.New("empty name")
	ErrDuplicateName      = errors.New("duplicate name")
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
}

// Document is the top level of a schema file.
type Document struct {
	Version string     `json:"version,omitempty" toml:"version,omitempty" yaml:"version,omitempty"`
	Command CommandDoc `json:"command" toml:"command" yaml:"command"`
}

type CommandDoc struct {
	Name     string       `json:"name" toml:"name" yaml:"name"`
	Help     string       `json:"help,omitempty" toml:"help,omitempty" yaml:"help,omitempty"`
	Aliases  []string     `json:"aliases,omitempty" toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Flags    []FlagDoc    `json:"flags,omitempty" toml:"flags,omitempty" yaml:"flags,omitempty"`
	Props    []PropDoc    `json:"props,omitempty" toml:"props,omitempty" yaml:"props,omitempty"`
	Commands []CommandDoc `json:"commands,omitempty" toml:"commands,omitempty" yaml:"commands,omitempty"`
}

type FlagDoc struct {
	Name    string   `json:"name" toml:"name" yaml:"name"`
	Aliases []string `json:"aliases,omitempty" toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Help    string   `json:"help,omitempty" toml:"help,omitempty" yaml:"help,omitempty"`
}

type PropDoc struct {
	Name     string   `json:"name" toml:"name" yaml:"name"`
	Aliases  []string `json:"aliases,omitempty" toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Help     string   `json:"help,omitempty" toml:"help,omitempty" yaml:"help,omitempty"`
	Required bool     `json:"required,omitempty" toml:"required,omitempty" yaml:"required,omitempty"`
}

// Load reads and checks the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadCommand is Load followed by Build.
func LoadCommand(path string) (*cmdschema.Command, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	cmd, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cmd, nil
}

// Decode reads a document in the given format. Unknown keys are an error.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty document")
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := doc.checkVersion(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) checkVersion() error {
	raw := d.Version
	if raw == "" {
		raw = defaultVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("version %q: %w", d.Version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// Build turns the document into a command definition. Every name and alias
// must be non-empty, and names may not repeat among the flags, props or
// subcommands of one command.
func (d *Document) Build() (*cmdschema.Command, error) {
	return d.Command.build(nil)
}

func (c *CommandDoc) build(parent []string) (*cmdschema.Command, error) {
	path := append(parent[:len(parent):len(parent)], c.Name)
	where := "command " + strings.Join(path, " ")
	if err := checkNames(c.Name, c.Aliases); err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}

	cmd := cmdschema.NewCommand(c.Name, c.Help)
	for _, a := range c.Aliases {
		cmd.Alias(a)
	}

	seen := make(map[string]bool)
	for i, f := range c.Flags {
		if err := checkNames(f.Name, f.Aliases); err != nil {
			return nil, fmt.Errorf("%s: flag %d: %w", where, i, err)
		}
		if err := claim(seen, f.Name, f.Aliases); err != nil {
			return nil, fmt.Errorf("%s: flag %q: %w", where, f.Name, err)
		}
		flag := cmdschema.NewFlag(f.Name, f.Help)
		for _, a := range f.Aliases {
			flag.Alias(a)
		}
		cmd.AddFlag(flag)
	}

	clear(seen)
	for i, p := range c.Props {
		if err := checkNames(p.Name, p.Aliases); err != nil {
			return nil, fmt.Errorf("%s: prop %d: %w", where, i, err)
		}
		if err := claim(seen, p.Name, p.Aliases); err != nil {
			return nil, fmt.Errorf("%s: prop %q: %w", where, p.Name, err)
		}
		prop := cmdschema.NewProp(p.Name, p.Help)
		for _, a := range p.Aliases {
			prop.Alias(a)
		}
		if p.Required {
			prop.Required()
		}
		cmd.AddProp(prop)
	}

	clear(seen)
	for i := range c.Commands {
		sub := &c.Commands[i]
		if err := claim(seen, sub.Name, sub.Aliases); err != nil {
			return nil, fmt.Errorf("%s: command %q: %w", where, sub.Name, err)
		}
		built, err := sub.build(path)
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(built)
	}
	return cmd, nil
}

func checkNames(name string, aliases []string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	for _, a := range aliases {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("alias of %q: %w", name, ErrEmptyName)
		}
	}
	return nil
}

func claim(seen map[string]bool, name string, aliases []string) error {
	for _, n := range append([]string{name}, aliases...) {
		if seen[n] {
			return fmt.Errorf("%w %q", ErrDuplicateName, n)
		}
		seen[n] = true
	}
	return nil
}

// FromCommand converts a definition back into a document, for printing.
func FromCommand(cmd *cmdschema.Command) *Document {
	return &Document{Version: defaultVersion, Command: commandDoc(cmd)}
}

func commandDoc(cmd *cmdschema.Command) CommandDoc {
	names := cmd.Names()
	d := CommandDoc{Name: names[0], Help: cmd.Help(), Aliases: names[1:]}
	if len(d.Aliases) == 0 {
		d.Aliases = nil
	}
	for _, f := range cmd.Flags() {
		n := f.Names()
		fd := FlagDoc{Name: n[0], Help: f.Help()}
		if len(n) > 1 {
			fd.Aliases = n[1:]
		}
		d.Flags = append(d.Flags, fd)
	}
	for _, p := range cmd.Props() {
		n := p.Names()
		pd := PropDoc{Name: n[0], Help: p.Help(), Required: p.IsRequired()}
		if len(n) > 1 {
			pd.Aliases = n[1:]
		}
		d.Props = append(d.Props, pd)
	}
	for _, sub := range cmd.Commands() {
		d.Commands = append(d.Commands, commandDoc(sub))
	}
	return d
}
