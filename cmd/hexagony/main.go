// Command hexagony runs a Hexagony source file, or prints the empty
// hexagonal template for a given side length.
package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli"

	"github.com/Urethramancer/hexagony/hexgrid"
	"github.com/Urethramancer/hexagony/hexvm"
)

func main() {
	app := cli.NewApp()
	app.Name = "hexagony"
	app.Usage = "Run Hexagony source, or print an empty hexagonal template"
	app.ArgsUsage = "[source-file]"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "grid, g",
			Usage: "print the empty template for side length N and exit",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "debug level 1: emit diagnostics for cells with the debug flag set",
		},
		cli.BoolFlag{
			Name:  "debug-all, D",
			Usage: "debug level 2: emit diagnostics for every tick",
		},
	}
	app.Action = runAction
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAction(c *cli.Context) error {
	if size := c.Int("grid"); size > 0 {
		fmt.Print(hexgrid.Template(size))
		return nil
	}

	path := c.Args().First()
	if path == "" {
		return cli.NewExitError("a source file is required unless --grid is given", 1)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("reading source file: %s", err), 1)
	}

	level := 0
	switch {
	case c.Bool("debug-all"):
		level = 2
	case c.Bool("debug"):
		level = 1
	}

	vm, err := hexvm.New(string(src), level, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("parsing source: %s", err), 1)
	}

	if err := vm.Run(); err != nil {
		return cli.NewExitError(fmt.Sprintf("execution failed: %s", err), 1)
	}
	return nil
}
