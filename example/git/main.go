// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command git shows how to pull arguments out of an argbag.Bag by hand.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/yeetrun/bindargs/pkg/argbag"
)

const rootHelp = `GIT
Documentation for root command

More info
`

const remoteHelp = `GIT REMOTE
Documentation for git remote command

More info
`

type root struct {
	verbose bool
}

type remote struct {
	level   string
	verbose bool
}

func wantsHelp(bag *argbag.Bag) bool {
	// Take both so neither is left over as an unexpected arg.
	long := bag.TakeFlag("help")
	short := bag.TakeFlag("h")
	return long || short
}

func checkEmpty(bag *argbag.Bag) error {
	if bag.IsEmpty() {
		return nil
	}
	return fmt.Errorf("unexpected args: %s", strings.Join(bag.TakeRemaining(), ","))
}

func handleRemote(bag *argbag.Bag) error {
	if wantsHelp(bag) {
		fmt.Print(remoteHelp)
		os.Exit(0)
	}
	level, ok := bag.TakeOption("level")
	if !ok {
		return fmt.Errorf("missing required option 'level'")
	}
	r := remote{level: level, verbose: bag.TakeFlag("verbose")}
	if err := checkEmpty(bag); err != nil {
		return err
	}
	log.Printf("remote: level=%s verbose=%v", r.level, r.verbose)
	return nil
}

func handleRoot(bag *argbag.Bag) error {
	if wantsHelp(bag) {
		fmt.Print(rootHelp)
		os.Exit(0)
	}
	r := root{verbose: bag.TakeFlag("verbose")}
	if err := checkEmpty(bag); err != nil {
		return err
	}
	log.Printf("root: verbose=%v", r.verbose)
	return nil
}

func run() error {
	bag, err := argbag.Parse(os.Args)
	if err != nil {
		return err
	}
	cmd, ok := bag.TakeNextOperand()
	switch {
	case !ok:
		return handleRoot(bag)
	case cmd == "remote":
		return handleRemote(bag)
	default:
		return fmt.Errorf("argument '%s' is not a valid command", cmd)
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
