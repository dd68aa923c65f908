package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"cssb/config"
	"cssb/match"
	"cssb/misc"
	"cssb/selector"
	"cssb/state"
)

// initializeAppContext prepares application context before command execution
// but after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.Load(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()
	return nil
}

// Ignore urfave/cli default error handling - cli.Exit() looks non-transparent
// and unnecessary, subcommands return regular errors.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "builds, normalizes and matches CSS selectors",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "force debug console logging"},
		},
		Commands: []*cli.Command{
			{
				Name:         "build",
				Usage:        "Builds selector strings from YAML definition file(s)",
				OnUsageError: usageErrorHandler,
				Action:       buildSelectors,
				ArgsUsage:    "FILE...",
			},
			{
				Name:         "parse",
				Usage:        "Parses selector string(s) and prints them in normalized form",
				OnUsageError: usageErrorHandler,
				Action:       parseSelectors,
				ArgsUsage:    "SELECTOR...",
			},
			{
				Name:         "match",
				Usage:        "Lists elements of an HTML document matching a selector",
				OnUsageError: usageErrorHandler,
				Action:       matchSelector,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "count", Usage: "print only the number of matches"},
				},
				ArgsUsage: "SELECTOR FILE",
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			// log may be either not set yet (argument parsing) or already
			// closed, report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func buildSelectors(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no definition files specified")
	}

	var errs error
	for _, fname := range cmd.Args().Slice() {
		data, err := os.ReadFile(fname)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read '%s': %w", fname, err))
			continue
		}
		def, err := selector.LoadDef(data)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("'%s': %w", fname, err))
			continue
		}
		b, err := def.Build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("'%s': %w", fname, err))
			continue
		}
		env.Log.Debug("Built selector", zap.String("file", fname), zap.Int("fragments", len(b.Fragments())))
		fmt.Println(b.String())
	}
	return errs
}

func parseSelectors(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no selectors specified")
	}

	p := selector.NewParser(env.Log)

	var errs error
	for _, s := range cmd.Args().Slice() {
		b, err := p.Parse(s)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		fmt.Println(b.String())
	}
	return errs
}

func matchSelector(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected SELECTOR and FILE arguments")
	}
	sel, fname := cmd.Args().Get(0), cmd.Args().Get(1)

	b, err := selector.NewParser(env.Log).Parse(sel)
	if err != nil {
		return err
	}
	m, err := match.Compile(b)
	if err != nil {
		return fmt.Errorf("selector %q cannot be matched: %w", sel, err)
	}

	f, err := os.Open(fname)
	if err != nil {
		return fmt.Errorf("unable to open '%s': %w", fname, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return fmt.Errorf("unable to parse '%s': %w", fname, err)
	}

	nodes := m.All(doc)
	env.Log.Debug("Matched document", zap.String("selector", b.String()), zap.String("file", fname), zap.Int("matches", len(nodes)))

	if cmd.Bool("count") {
		fmt.Println(len(nodes))
		return nil
	}
	for _, n := range nodes {
		fmt.Println(describe(n))
	}
	return nil
}

// describe renders a matched element back as a compound selector, which is
// both compact and unambiguous enough for eyeballing results.
func describe(n *html.Node) string {
	b := selector.Element(n.Data)
	if id := attrValue(n, "id"); id != "" {
		b.ID(id)
	}
	for _, c := range strings.Fields(attrValue(n, "class")) {
		b.Class(c)
	}
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	data, err := config.Dump(env.Cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	env.Log.Debug("Outputting configuration", zap.Int("bytes", len(data)))
	fmt.Print(string(data))
	return nil
}
