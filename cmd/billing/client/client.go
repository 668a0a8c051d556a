package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DE-labtory/billing"
	"github.com/DE-labtory/billing/pb"
	"github.com/kyokomi/emoji"
	"github.com/urfave/cli"
)

const callTimeout = 10 * time.Second

var addressFlag = cli.StringFlag{
	Name:   "address, a",
	Usage:  "ledger gRPC address",
	Value:  "127.0.0.1:5000",
	EnvVar: "BILLING_ADDRESS",
}

// Cmds are the commands talking to a running ledger.
func Cmds() []cli.Command {
	return []cli.Command{
		{
			Name:      "users",
			Usage:     "List participants with their balances",
			UsageText: "billing users",
			Flags:     []cli.Flag{addressFlag},
			Action: func(c *cli.Context) error {
				return withClient(c, listUsers)
			},
		},
		{
			Name:      "emit",
			Usage:     "Mint AMOUNT coins across participants",
			UsageText: "billing emit AMOUNT",
			Flags:     []cli.Flag{addressFlag},
			Action: func(c *cli.Context) error {
				amount, err := parseAmount(c.Args().Get(0))
				if err != nil {
					return err
				}
				return withClient(c, func(ctx context.Context, client *billing.Client) error {
					return printResponse(client.Emit(ctx, amount))
				})
			},
		},
		{
			Name:      "move",
			Usage:     "Move AMOUNT coins from SRC to DST",
			UsageText: "billing move SRC DST AMOUNT",
			Flags:     []cli.Flag{addressFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() != 3 {
					return fmt.Errorf("expected SRC DST AMOUNT, got %d arguments", c.NArg())
				}
				amount, err := parseAmount(c.Args().Get(2))
				if err != nil {
					return err
				}
				return withClient(c, func(ctx context.Context, client *billing.Client) error {
					return printResponse(client.Transfer(ctx, c.Args().Get(0), c.Args().Get(1), amount))
				})
			},
		},
		{
			Name:      "coin",
			Usage:     "Show the coin with the longest history",
			UsageText: "billing coin",
			Flags:     []cli.Flag{addressFlag},
			Action: func(c *cli.Context) error {
				return withClient(c, longestHistoryCoin)
			},
		},
	}
}

func withClient(c *cli.Context, fn func(ctx context.Context, client *billing.Client) error) error {
	addr, err := billing.ToAddress(c.String("address"))
	if err != nil {
		return err
	}

	client, err := billing.NewClient().Dial(billing.DialOpts{Addr: addr, Timeout: billing.DefaultDialTimeout})
	if err != nil {
		return fmt.Errorf("cannot connect to %s: %s", addr, err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	return fn(ctx, client)
}

func listUsers(ctx context.Context, client *billing.Client) error {
	participants, err := client.ListParticipants(ctx)
	if err != nil {
		return err
	}
	for _, p := range participants {
		fmt.Printf("%-16s weight=%-8d balance=%d\n", p.Name, p.Weight, p.Balance)
	}
	return nil
}

func longestHistoryCoin(ctx context.Context, client *billing.Client) error {
	coin, err := client.LongestHistoryCoin(ctx)
	if err != nil {
		return err
	}
	emoji.Printf(":moneybag: coin %d: %s\n", coin.ID, coin.History())
	return nil
}

func printResponse(resp *pb.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.GetStatus() != pb.Response_OK {
		emoji.Println(":broken_heart:", resp.GetComment())
		return nil
	}
	emoji.Printf(":white_check_mark: %s (receipt %s)\n", resp.GetComment(), resp.GetReceipt())
	return nil
}

func parseAmount(arg string) (int64, error) {
	amount, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be an integer, got %q", arg)
	}
	return amount, nil
}
