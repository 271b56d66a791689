// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Print the cluster test environment or run a command in it.

// Command testenv applies the cluster test defaults outside of go test:
//
//	eval $(testenv print | sed 's/^/export /')
//	testenv exec -- java -jar member.jar
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/getoutreach/testharness/pkg/cfg"
	"github.com/getoutreach/testharness/pkg/exec"
	"github.com/getoutreach/testharness/pkg/log"
	"github.com/getoutreach/testharness/pkg/testenv"
)

// nolint:gochecknoglobals // Why: set at build time
var Version = "v0.0.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := newApp(os.Stdout, os.Environ, exec.OsExecutor{})
	err := app.RunContext(ctx, os.Args)

	var exitErr cli.ExitCoder
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		cancel()
		os.Exit(exitErr.ExitCode())
	default:
		log.Error(ctx, "testenv failed", log.F{"error": err.Error()})
		cancel()
		os.Exit(1)
	}
}

// commands holds what the commands need from the process.
type commands struct {
	stdout   io.Writer
	environ  func() []string
	executor exec.Executor
}

func newApp(stdout io.Writer, environ func() []string, executor exec.Executor) *cli.App {
	c := &commands{stdout: stdout, environ: environ, executor: executor}

	return &cli.App{
		Name:      "testenv",
		Usage:     "Cluster test environment defaults",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		// main decides about the exit code
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:   "print",
				Usage:  "Print KEY=VALUE for every test environment key",
				Flags:  []cli.Flag{configDirFlag()},
				Action: c.print,
			},
			{
				Name:      "exec",
				Usage:     "Run a command inside the test environment",
				ArgsUsage: "-- COMMAND [ARGS...]",
				Flags:     []cli.Flag{configDirFlag()},
				Action:    c.exec,
			},
		},
	}
}

func configDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config-dir",
		Usage:   "Directory holding " + testenv.ConfigFile + " (default: working directory)",
		EnvVars: []string{cfg.DirEnv},
	}
}

// configure applies the defaults to a copy of the process environment
// and returns it together with the keys the defaults cover.
func (c *commands) configure(cctx *cli.Context) (*testenv.MapStore, []string, error) {
	store := testenv.ParseEnviron(c.environ())
	applied, err := testenv.ConfigureStore(cctx.Context, store, cfg.DirReader(cctx.String("config-dir")))
	if err != nil {
		return nil, nil, err
	}

	seen := map[string]bool{}
	keys := []string{}
	for _, k := range append(testenv.Keys(), applied...) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return store, keys, nil
}

func (c *commands) print(cctx *cli.Context) error {
	store, keys, err := c.configure(cctx)
	if err != nil {
		return err
	}

	for _, k := range keys {
		if v, ok := store.Lookup(k); ok {
			if _, err := fmt.Fprintf(c.stdout, "%s=%s\n", k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *commands) exec(cctx *cli.Context) error {
	args := cctx.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("exec needs a command to run", 2)
	}

	store, _, err := c.configure(cctx)
	if err != nil {
		return err
	}

	snapshot := store.Snapshot()
	env := make([]string, 0, len(snapshot))
	for k, v := range snapshot {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)

	cmd, err := exec.Command(cctx.Context, env, args[0], args[1:]...)
	if err != nil {
		return cli.Exit(err.Error(), 127)
	}
	cmd.Stdout = c.stdout
	if err := c.executor.Run(cmd); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return cli.Exit("", exec.ExitCode(err))
		}
		return err
	}
	return nil
}
