// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command first validates its own arguments against a small schema.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/yeetrun/bindargs/pkg/cmdschema"
)

func main() {
	app := cmdschema.NewCommand("myexample", "my help is here").
		AddProp(cmdschema.NewProp("log-level", "The log level to use")).
		AddFlag(cmdschema.NewFlag("verbose", "If to be loud"))

	inv, err := app.Parse(os.Args)
	var help *cmdschema.HelpRequest
	switch {
	case errors.As(err, &help):
		if err := help.WriteHelp(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	case err != nil:
		log.Fatal(err)
	}

	level, _ := inv.Args.Prop("log-level")
	fmt.Printf("program=%s log-level=%q verbose=%v\n", inv.Program, level, inv.Args.HasFlag("verbose"))
}
