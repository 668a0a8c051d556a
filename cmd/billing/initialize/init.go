package initialize

import (
	"github.com/DE-labtory/billing/config"
	"github.com/kyokomi/emoji"
	"github.com/urfave/cli"
)

func Cmd() cli.Command {
	return cli.Command{
		Name:      "init",
		Usage:     "Initialize billing configuration",
		UsageText: "billing init [--from FILE_PATH]",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "from",
				Usage: "copy configuration from FILE_PATH instead of writing defaults",
			},
		},
		Action: func(c *cli.Context) error {
			return initBilling(c.String("from"))
		},
	}
}

func initBilling(from string) error {
	if err := config.Init(from); err != nil {
		emoji.Println(":broken_heart: initialize failed with error:", err)
		return err
	}
	emoji.Printf(":beer: successfully initialized at %s\n", config.Path())
	return nil
}
