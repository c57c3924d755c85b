package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/pyparser/src/enum"
	"github.com/andrewyi/pyparser/src/server"
)

func main() {

	app := cli.NewApp()

	app.Name = "pyparser"
	app.Version = "0.1.0"
	app.Usage = "Python documentation and PEP parser"
	app.ArgsUsage = "{" + strings.Join(enum.ModeNames(), ",") + "}"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "config file",
			Value: "./config.yaml",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "additional output: pretty, file",
		},
		cli.BoolFlag{
			Name:  "clear-cache, c",
			Usage: "clear the response cache before running",
		},
	}

	s := server.NewServer()
	app.Action = s.Start

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
