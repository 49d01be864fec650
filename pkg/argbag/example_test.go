// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argbag_test

import (
	"fmt"

	"github.com/yeetrun/bindargs/pkg/argbag"
)

func ExampleBag_TakeOption() {
	bag, err := argbag.Parse([]string{"program", "--opt1=value", "--opt2", "value2"})
	if err != nil {
		panic(err)
	}
	fmt.Println(bag.TakeOption("opt1"))
	fmt.Println(bag.TakeOption("opt2"))
	fmt.Println(bag.IsEmpty())
	// Output:
	// value true
	// value2 true
	// true
}

func ExampleBag_TakeFlag() {
	bag, err := argbag.Parse([]string{"program", "--option", "value"})
	if err != nil {
		panic(err)
	}
	fmt.Println(bag.TakeFlag("option"))
	fmt.Println(bag.TakeNextOperand())
	// Output:
	// true
	// value true
}

func ExampleBag_TakeIgnored() {
	bag, err := argbag.Parse([]string{"program", "arg", "--", "stuff"})
	if err != nil {
		panic(err)
	}
	fmt.Println(bag.TakeRemaining(), bag.TakeIgnored())
	// Output: [arg] [stuff]
}
