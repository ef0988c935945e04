package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "asistente-linux",
		Usage: "Asistente de preguntas frecuentes sobre administración de Linux",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
			},
		},
		Before: func(c *cli.Context) error {
			if path := c.String("config"); path != "" {
				return os.Setenv("CONFIG_PATH", path)
			}
			return nil
		},
		DefaultCommand: "consola",
		Commands: []*cli.Command{
			{
				Name:   "consola",
				Usage:  "Run the interactive console loop",
				Action: runConsole,
			},
			{
				Name:   "servidor",
				Usage:  "Run the HTTP API server",
				Action: runServer,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

func runConsole(*cli.Context) error {
	ctx, stop := signalContext()
	defer stop()

	app, err := initializeApp()
	if err != nil {
		return err
	}
	return app.RunConsole(ctx)
}

func runServer(*cli.Context) error {
	ctx, stop := signalContext()
	defer stop()

	app, err := initializeApp()
	if err != nil {
		return err
	}
	return app.RunServer(ctx)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
