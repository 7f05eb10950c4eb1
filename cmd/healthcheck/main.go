// Команда healthcheck опрашивает gRPC health-сервис и завершается с кодом 1,
// если сервис или указанная зависимость недоступны. Используется в HEALTHCHECK контейнера.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/magabrotheeeer/health-tracker/internal/grpc/client"
)

func main() {
	app := &cli.App{
		Name:  "healthcheck",
		Usage: "probe health-tracker gRPC health service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "gRPC health address",
				EnvVars: []string{"GRPC_HEALTH_ADDRESS"},
				Value:   "localhost:9090",
			},
			&cli.StringFlag{
				Name:    "service",
				Aliases: []string{"s"},
				Usage:   "dependency name (storage, cache); empty checks the whole service",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "check timeout",
				Value: 3 * time.Second,
			},
		},
		Action: func(c *cli.Context) error {
			if err := check(c.Context, c.String("addr"), c.String("service"), c.Duration("timeout")); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Println("serving")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func check(ctx context.Context, addr, service string, timeout time.Duration) error {
	c, err := client.NewHealthClient(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ok, err := c.Check(ctx, service)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("not serving")
	}
	return nil
}
