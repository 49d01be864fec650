// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/bindargs/pkg/argbag"
	"github.com/yeetrun/bindargs/pkg/argtree"
	"github.com/yeetrun/bindargs/pkg/cmdschema"
	"github.com/yeetrun/bindargs/pkg/tui"
	"gopkg.in/yaml.v3"
)

func mustBag(t *testing.T, opts argbag.Options, args ...string) *argbag.Bag {
	t.Helper()
	bag, err := argbag.ParseOptions(args, opts)
	if err != nil {
		t.Fatal(err)
	}
	return bag
}

func ptr[T any](v T) *T { return &v }

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, "yaml": FormatYAML, "env": FormatEnv} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("ParseFormat(xml) succeeded")
	}
}

func TestTokensText(t *testing.T) {
	bag := mustBag(t, argbag.Options{}, "exe", "--verbose", "--level=3", "remote", "--", "x", "y")
	var sb strings.Builder
	if err := (Printer{}).Tokens(&sb, bag); err != nil {
		t.Fatal(err)
	}
	var got [][]string
	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		got = append(got, strings.Fields(line))
	}
	want := [][]string{
		{"program:", "exe"},
		{"KIND", "NAME", "VALUE", "POS"},
		{"flag", "verbose"},
		{"option", "level", "3"},
		{"operand", "remote", "0"},
		{"ignored:", "x", "y"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
	if bag.Len() != 3 {
		t.Errorf("Tokens consumed the bag: Len() = %d", bag.Len())
	}
}

func TestTokensTextCommand(t *testing.T) {
	bag := mustBag(t, argbag.Options{Grammar: argbag.GrammarMarker}, "tool", "@sync")
	var sb strings.Builder
	if err := (Printer{}).Tokens(&sb, bag); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), "program: tool\ncommand: sync\n"; got != want {
		t.Errorf("Tokens = %q, want %q", got, want)
	}
}

func TestTokensStructured(t *testing.T) {
	bag := mustBag(t, argbag.Options{}, "exe", "-v", "--level=", "remote", "--", "x")
	want := tokensDoc{
		Program: "exe",
		Tokens: []tokenDoc{
			{Kind: "flag", Name: "v"},
			{Kind: "option", Name: "level", Value: ptr("")},
			{Kind: "operand", Value: ptr("remote"), Position: ptr(0)},
		},
		Ignored: []string{"x"},
	}

	var js strings.Builder
	if err := (Printer{Format: FormatJSON}).Tokens(&js, bag); err != nil {
		t.Fatal(err)
	}
	var gotJSON tokensDoc
	if err := json.Unmarshal([]byte(js.String()), &gotJSON); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, gotJSON); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}

	var ys strings.Builder
	if err := (Printer{Format: FormatYAML}).Tokens(&ys, bag); err != nil {
		t.Fatal(err)
	}
	var gotYAML tokensDoc
	if err := yaml.Unmarshal([]byte(ys.String()), &gotYAML); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, gotYAML); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}

	err := (Printer{Format: FormatEnv}).Tokens(&strings.Builder{}, bag)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("env Tokens = %v, want ErrUnsupportedFormat", err)
	}
}

func TestTreeText(t *testing.T) {
	root, trailing, err := argtree.Parse([]string{"git", "--verbose", "-v", "remote", "--level=3", "add", "--", "--x"}, argbag.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := (Printer{}).Tree(&sb, root, trailing); err != nil {
		t.Fatal(err)
	}
	want := "git -v --verbose\n" +
		"└── remote --level=3\n" +
		"    └── add\n" +
		"-- --x\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeTextMarkerArgs(t *testing.T) {
	root, _, err := argtree.Parse([]string{"tool", "@sync", "src", "dst"}, argbag.Options{Grammar: argbag.GrammarMarker})
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := (Printer{}).Tree(&sb, root, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), "tool\n└── sync src dst\n"; got != want {
		t.Errorf("Tree = %q, want %q", got, want)
	}
}

func TestTreeStructured(t *testing.T) {
	root, trailing, err := argtree.Parse([]string{"git", "--verbose", "remote", "--level=3", "--", "x"}, argbag.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := treeDoc{
		Tree: &nodeDoc{
			Name:  "git",
			Flags: []string{"verbose"},
			Sub: &nodeDoc{
				Name:  "remote",
				Props: map[string]string{"level": "3"},
			},
		},
		Trailing: []string{"x"},
	}

	var js strings.Builder
	if err := (Printer{Format: FormatJSON}).Tree(&js, root, trailing); err != nil {
		t.Fatal(err)
	}
	var got treeDoc
	if err := json.Unmarshal([]byte(js.String()), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}

	var env strings.Builder
	if err := (Printer{Format: FormatEnv}).Tree(&env, root, trailing); err != nil {
		t.Fatal(err)
	}
	if got, want := env.String(), "GIT_REMOTE_LEVEL=3\nGIT_VERBOSE=1\n"; got != want {
		t.Errorf("env = %q, want %q", got, want)
	}
}

func TestTreeColor(t *testing.T) {
	root, _, err := argtree.Parse([]string{"git", "--verbose"}, argbag.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	p := Printer{Color: tui.Colorizer{Enabled: true}}
	if err := p.Tree(&sb, root, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "\x1b[") {
		t.Errorf("colored Tree has no escape codes: %q", sb.String())
	}
}

func TestError(t *testing.T) {
	_, perr := argbag.Parse([]string{"exe", "--s"})
	app := cmdschema.NewCommand("exe", "")
	_, verr := app.Parse([]string{"exe", "push"})

	tests := []struct {
		err  error
		cat  Category
		text string
	}{
		{perr, CategorySyntax, "syntax error: '--s' is not a valid flag\n"},
		{verr, CategoryInvalid, "invalid arguments: push is not a valid command\n"},
		{errors.New("boom"), CategoryOther, "error: boom\n"},
	}
	for _, tt := range tests {
		if got := Categorize(tt.err); got != tt.cat {
			t.Errorf("Categorize(%v) = %q, want %q", tt.err, got, tt.cat)
		}
		var sb strings.Builder
		if err := (Printer{}).Error(&sb, tt.err); err != nil {
			t.Fatal(err)
		}
		if sb.String() != tt.text {
			t.Errorf("Error = %q, want %q", sb.String(), tt.text)
		}

		var js strings.Builder
		if err := (Printer{Format: FormatJSON}).Error(&js, tt.err); err != nil {
			t.Fatal(err)
		}
		var doc errorDoc
		if err := json.Unmarshal([]byte(js.String()), &doc); err != nil {
			t.Fatal(err)
		}
		if doc.Category != tt.cat || doc.Error != tt.err.Error() {
			t.Errorf("json Error = %+v", doc)
		}
	}
}

func TestHelp(t *testing.T) {
	app := cmdschema.NewCommand("git", "git help").
		AddCommand(cmdschema.NewCommand("remote", "remote help").Alias("r").
			AddProp(cmdschema.NewProp("level", "detail").Required()))
	_, err := app.Parse([]string{"git", "r", "--help"})
	var h *cmdschema.HelpRequest
	if !errors.As(err, &h) {
		t.Fatalf("Parse = %v, want help request", err)
	}

	var text, direct strings.Builder
	if err := (Printer{}).Help(&text, h); err != nil {
		t.Fatal(err)
	}
	if err := h.WriteHelp(&direct); err != nil {
		t.Fatal(err)
	}
	if text.String() != direct.String() {
		t.Errorf("text Help = %q, want %q", text.String(), direct.String())
	}

	var ys strings.Builder
	if err := (Printer{Format: FormatYAML}).Help(&ys, h); err != nil {
		t.Fatal(err)
	}
	var doc helpDoc
	if err := yaml.Unmarshal([]byte(ys.String()), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Usage != "Usage: git remote --level=<value>" || doc.Command.Name != "remote" || len(doc.Command.Props) != 1 {
		t.Errorf("yaml Help = %+v", doc)
	}
}
