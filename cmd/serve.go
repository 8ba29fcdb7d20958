package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/wiretap-io/wiretap/app"
	"github.com/wiretap-io/wiretap/app/standalone"
	"github.com/wiretap-io/wiretap/internal/server"
)

var (
	serveCmdDescription = `The serve command starts the diagnostic http listener and
blocks indefinitely. Every GET and POST request is dumped to
the console (path, headers, and body for POST) and answered
with a fixed plaintext acknowledgement.

By default the listener binds port 8090 on all interfaces.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http listener and dump incoming requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The interface to listen on. Empty means all interfaces.",
				Value:    "",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8090,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	standaloneConfig := standalone.Config{
		HttpConfig: server.HttpConfig{
			Host: ctx.String("host"),
			Port: ctx.Int("port"),
			H2c:  ctx.Bool("h2c"),
		},
	}

	return app.Run(ctx.Context, standalone.Module(standaloneConfig))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
