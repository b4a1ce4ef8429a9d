// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// load values from a file, build a balanced tree and dump it as ASCII
// art with the balance bookkeeping visible
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/ordtree/ordtree/avl"
	"github.com/ordtree/ordtree/fault"
	"github.com/ordtree/ordtree/version"
)

// text payload ordered lexically
type textItem string

func (s textItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(textItem)))
}

// numeric payload
type numberItem int64

func (n numberItem) Compare(x interface{}) int {
	m := x.(numberItem)
	switch {
	case n < m:
		return -1
	case n > m:
		return +1
	default:
		return 0
	}
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "numeric", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'c'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version.Version)
	}

	if len(options["help"]) > 0 || (0 == len(arguments) && 0 == len(options["file"])) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--numeric] [--check] [--delete=VALUE] [--file=FILE] [value...]", program)
	}

	numeric := len(options["numeric"]) > 0
	verbose := len(options["verbose"]) > 0

	logging := logger.Configuration{
		Directory: ".",
		File:      "ordtree-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	values := arguments
	if len(options["file"]) > 0 {
		values, err = readValues(options["file"][0])
		if nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
	}

	tree := avl.New()
	for _, v := range values {
		tree.Insert(toItem(program, v, numeric))
	}
	if verbose {
		fmt.Printf("loaded: %d values, tree holds: %d nodes\n", len(values), tree.Count())
	}

	for _, v := range options["delete"] {
		removed := tree.Delete(toItem(program, v, numeric))
		if verbose {
			if nil == removed {
				fmt.Printf("not present: %s\n", v)
			} else {
				fmt.Printf("deleted: %v\n", removed)
			}
		}
	}

	if len(options["check"]) > 0 {
		if !tree.CheckUp() {
			exitwithstatus.Message("%s: inconsistent parent links", program)
		}
		height, ok := tree.CheckBalance()
		if !ok {
			exitwithstatus.Message("%s: balance factors corrupt", program)
		}
		fmt.Printf("check ok: %d nodes  height: %d\n", tree.Count(), height)
	}

	tree.Print(os.Stdout, true)
}

// read one value per line, blank lines are skipped
func readValues(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if nil != err {
		return nil, fault.ErrNotFoundDataFile
	}
	defer f.Close()

	values := []string{}
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if "" != line {
			values = append(values, line)
		}
	}
	return values, s.Err()
}

// convert a command value to a payload
func toItem(program string, v string, numeric bool) interface{} {
	if !numeric {
		return textItem(v)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if nil != err {
		exitwithstatus.Message("%s: convert value error: %s", program, err)
	}
	return numberItem(n)
}
