// Command flightnet is an interactive shell over an in-memory airport network.
//
// Without a subcommand it shows the numbered menu and reads choices from
// stdin. "run --script FILE" executes one command per line instead.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/flightnet/core"
)

const (
	ConfigFlag = "config"
	DebugFlag  = "debug"
	TableFlag  = "table"
	ScriptFlag = "script"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp wires the CLI to in and out so tests can drive it.
func newApp(in io.Reader, out io.Writer) *cli.App {
	var sh *shell

	repl := func(*cli.Context) error { return sh.repl(in) }

	return &cli.App{
		Name:      "flightnet",
		Usage:     "explore an airport network: airports, routes, traversals and fares",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    ConfigFlag,
				Aliases: []string{"c"},
				Usage:   "YAML config file (log level, table style, seed network)",
				EnvVars: []string{"FLIGHTNET_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  DebugFlag,
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  TableFlag,
				Usage: "Display the adjacency matrix as a boxed table",
			},
		},
		Before: func(cCtx *cli.Context) error {
			cfg, err := LoadConfig(cCtx.String(ConfigFlag))
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cCtx.Bool(DebugFlag))
			if err != nil {
				return err
			}

			g := core.NewGraph(core.WithCapacity(len(cfg.Seed.Airports)))
			if err := applySeed(g, cfg.Seed); err != nil {
				return err
			}
			logger.Debug("graph ready",
				zap.Int("airports", g.VertexCount()), zap.Int("routes", g.EdgeCount()),
				zap.String("tableStyle", cfg.TableStyle))

			sh = newShell(g, out, logger, cfg, cCtx.Bool(TableFlag))
			return nil
		},
		After: func(*cli.Context) error {
			if sh != nil {
				_ = sh.log.Sync()
			}
			return nil
		},
		Action: repl,
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Usage:  "Interactive numbered menu (default)",
				Action: repl,
			},
			{
				Name:  "run",
				Usage: "Execute a command script, one command per line",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     ScriptFlag,
						Aliases:  []string{"s"},
						Usage:    "script file, or - for stdin",
						Required: true,
					},
				},
				Action: func(cCtx *cli.Context) error {
					path := cCtx.String(ScriptFlag)
					if path == "-" {
						return sh.runScript(in)
					}
					f, err := os.Open(path)
					if err != nil {
						return err
					}
					defer f.Close()

					return sh.runScript(f)
				},
			},
		},
	}
}
