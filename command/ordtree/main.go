// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ordtree/ordtree/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "ordtree"
	app.Usage = "inspect balanced ordered-tree behaviour"
	app.Version = version.Version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " order values numerically instead of as text",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "show",
			Usage:     "build a tree from the argument values and render it",
			ArgsUsage: "value...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include identifiers and balance factors",
				},
			},
			Action: runShow,
		},
		{
			Name:      "trace",
			Usage:     "render the tree after every single insert and delete",
			ArgsUsage: "value...",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "delete, x",
					Usage: " value to delete after all inserts, repeatable",
				},
			},
			Action: runTrace,
		},
		{
			Name:  "stress",
			Usage: "random insert/delete torture with invariant verification",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 1000,
					Usage: " number of values to insert",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random seed",
				},
			},
			Action: runStress,
		},
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "ordtree.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", app.Name, err)
	}
	defer logger.Finalise()

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
