// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argbag tokenizes a command line and lets callers pull flags,
// options and operands out of it without declaring a schema first.
//
// # Grammar
//
//	--name          flag, name of two or more characters
//	-n              flag, exactly one character
//	--name=value    option
//	-n=value        option
//	--              end of options; the rest is kept verbatim, minus empty strings
//	@name           subcommand declaration (GrammarMarker only, first position)
//	anything else   operand, numbered from 0 in order of appearance
//
// Blank arguments are skipped and do not count as operands.
//
// # Extraction
//
// A Bag hands out each token once:
//
//	bag, err := argbag.Parse(os.Args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	verbose := bag.TakeFlag("verbose") || bag.TakeFlag("v")
//	level, ok := bag.TakeOption("level")
//	if !bag.IsEmpty() {
//	    log.Fatalf("unexpected args: %v", bag.TakeRemaining())
//	}
//
// "--level debug" lexes as a flag followed by an operand. Calling
// TakeOption("level") claims both; calling TakeFlag("level") first claims
// only the flag and leaves "debug" as an operand.
package argbag
