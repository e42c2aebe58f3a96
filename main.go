package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	log "github.com/sirupsen/logrus"
)

const version = "0.1.0"

type OnCmd struct{}
type OffCmd struct{}
type ToggleCmd struct{}
type StatusCmd struct{}

// Args represents command-line arguments
type Args struct {
	On     *OnCmd     `arg:"subcommand:on" help:"enable the oh-my-opencode plugin"`
	Off    *OffCmd    `arg:"subcommand:off" help:"disable the oh-my-opencode plugin"`
	Toggle *ToggleCmd `arg:"subcommand:toggle" help:"flip the oh-my-opencode plugin state"`
	Status *StatusCmd `arg:"subcommand:status" help:"show the plugin state and plugin list"`
	S      *StatusCmd `arg:"subcommand:s" help:"(alias) same as status"`

	Verbose bool `arg:"-v,--verbose" help:"log config reads and writes"`
	NoColor bool `arg:"--no-color" help:"disable colored output"`
}

func (Args) Description() string {
	return "Quickly switch the oh-my-opencode plugin on or off in the opencode config"
}

func (Args) Version() string {
	return "omos " + version
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain parses argv, runs the command and returns the exit code: 0 on
// success, 1 when the command fails and 2 on usage errors.
func realMain(argv []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.InfoLevel)

	var args Args
	p, err := arg.NewParser(arg.Config{Program: "omos"}, &args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	err = p.Parse(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		return 0
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, args.Version())
		return 0
	case err != nil:
		p.WriteUsage(stderr)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	case p.Subcommand() == nil:
		p.WriteUsage(stderr)
		fmt.Fprintln(stderr, "error: missing subcommand")
		return 2
	}

	if args.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("omos version %s", version)

	if err := run(&args, newPrinter(stdout, !args.NoColor)); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

// run resolves the config path and applies the selected subcommand.
func run(args *Args, out *printer) error {
	path, err := Locate()
	if err != nil {
		return err
	}
	store := NewStore(path)

	switch {
	case args.On != nil:
		return apply(store, out, Enable)
	case args.Off != nil:
		return apply(store, out, Disable)
	case args.Toggle != nil:
		return apply(store, out, Toggle)
	case args.Status != nil, args.S != nil:
		cfg, err := store.Load()
		if err != nil {
			return err
		}
		out.status(store.Path(), PluginName, cfg)
		return nil
	default:
		return errors.New("no subcommand given")
	}
}

// apply loads the config, runs op on the tracked plugin and saves only when
// the list changed.
func apply(store *Store, out *printer, op func(*Config, string) Change) error {
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	change := op(cfg, PluginName)
	if change != Unchanged {
		if err := store.Save(cfg); err != nil {
			return err
		}
	}
	log.WithFields(log.Fields{"plugin": PluginName, "change": change}).Debug("applied")

	out.changed(PluginName, change, IsEnabled(cfg, PluginName))
	return nil
}
