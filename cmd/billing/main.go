package main

import (
	"os"
	"time"

	clientCmd "github.com/DE-labtory/billing/cmd/billing/client"
	initCmd "github.com/DE-labtory/billing/cmd/billing/initialize"
	startCmd "github.com/DE-labtory/billing/cmd/billing/start"
	"github.com/DE-labtory/billing/config"
	"github.com/DE-labtory/billing/log"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "billing"
	app.Version = "0.0.1"
	app.Compiled = time.Now()
	app.Usage = "Coin ledger with weighted emission and per-coin provenance"
	app.UsageText = "billing [options] command [command options] [arguments...]"
	app.Authors = []cli.Author{
		{
			Name:  "DE-labtory",
			Email: "de.labtory@gmail.com",
		},
	}
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "set debug mode",
		},
		cli.StringFlag{
			Name:   "config, c",
			Usage:  "use configuration file at FILE_PATH",
			Value:  config.Path(),
			EnvVar: "BILLING_CONFIG",
		},
	}
	app.Before = func(c *cli.Context) error {
		config.SetPath(c.GlobalString("config"))
		if c.GlobalBool("debug") {
			log.SetToDebug()
		}
		return nil
	}

	app.Commands = []cli.Command{}
	app.Commands = append(app.Commands, initCmd.Cmd())
	app.Commands = append(app.Commands, startCmd.Cmd())
	app.Commands = append(app.Commands, clientCmd.Cmds()...)

	if err := app.Run(os.Args); err != nil {
		log.Error("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
