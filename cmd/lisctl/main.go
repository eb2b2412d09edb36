// Command lisctl drives the dashboard controllers from a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"lis-dashboard/internal/client"
	"lis-dashboard/internal/config"
	"lis-dashboard/internal/logger"
	"lis-dashboard/internal/mockstore"
)

const usage = `usage: lisctl [flags] <command> [args]

commands:
  list <resource> [-f key=value ...]   list projects, programs, applications, beneficiaries, lots,
                                      co-owners, employment-profiles, properties or
                                      program-classifications; skip and limit page the result
  pending [projects|programs]          records awaiting approval
  approve <projects|programs> <id>     approve a pending record
  reject <projects|programs> <id>      reject a pending record (--reason)
  search <query> [--limit n]           search across records

In --mock mode every run starts from the demo data.

flags:
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, nil); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "lisctl:", err)
		}
		os.Exit(1)
	}
}

type app struct {
	client    *client.Client
	out       io.Writer
	log       zerolog.Logger
	searchCfg config.SearchConfig
}

// run executes one command. mock serves --mock and --fallback; nil
// means a fresh seeded store.
func run(ctx context.Context, args []string, out io.Writer, mock client.MockHandler) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := pflag.NewFlagSet("lisctl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(out)
	apiURL := fs.String("api-url", cfg.Client.APIURL, "API base URL")
	useMock := fs.Bool("mock", cfg.Client.UseMock, "serve requests from the in-process mock store")
	fallback := fs.Bool("fallback", cfg.Client.FallbackToMock, "retry against the mock store when the API is unreachable")
	timeout := fs.Duration("timeout", cfg.Client.Timeout, "per-request timeout, 0 for none")
	verbose := fs.BoolP("verbose", "v", false, "log client events to stderr")
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errUsage
	}

	log := zerolog.Nop()
	if *verbose {
		log = logger.NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr}, "debug")
	}
	if mock == nil && (*useMock || *fallback) {
		mock = mockstore.New()
	}
	a := &app{
		client: client.New(client.Config{
			BaseURL:        *apiURL,
			MockMode:       *useMock,
			FallbackToMock: *fallback,
			Timeout:        *timeout,
		}, mock, client.WithLogger(log)),
		out:       out,
		log:       log,
		searchCfg: cfg.Search,
	}

	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "list":
		return a.list(ctx, cmdArgs)
	case "pending":
		return a.pending(ctx, cmdArgs)
	case "approve":
		return a.decide(ctx, cmdArgs, false)
	case "reject":
		return a.decide(ctx, cmdArgs, true)
	case "search":
		return a.search(ctx, cmdArgs)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}
