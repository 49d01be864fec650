// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

// Help flag names. "-h" lexes as "h" and "--help" as "help".
const (
	HelpFlag      = "help"
	HelpFlagShort = "h"
)

// RequestedHelp returns the name of the first node, root first, that carries
// a help flag.
func RequestedHelp(root *Node) (string, bool) {
	path, ok := HelpPath(root)
	if !ok {
		return "", false
	}
	return path[len(path)-1], true
}

// HelpPath is like RequestedHelp but returns every name from the root down to
// the node that asked for help.
//
// It does not look at any schema, so it works on command lines that would
// fail validation (e.g. a missing required option).
func HelpPath(root *Node) ([]string, bool) {
	var path []string
	for cur := root; cur != nil; cur = cur.Sub {
		path = append(path, cur.Name)
		if cur.HasFlag(HelpFlag) || cur.HasFlag(HelpFlagShort) {
			return path, true
		}
	}
	return nil, false
}
