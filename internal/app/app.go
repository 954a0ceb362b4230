// Package app implements the wikitable command line tool.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/wikitable/internal/config"
	"github.com/tsawler/wikitable/internal/logging"
	"github.com/tsawler/wikitable/scalar"
)

var (
	// ErrUsage is returned for bad command lines. Usage has already been
	// printed.
	ErrUsage = errors.New("usage error")

	// ErrUnknownFormat is returned when an input or output format cannot
	// be determined or is not valid for the command.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrNoTable is returned when a document needs exactly one table and
	// does not have one.
	ErrNoTable = errors.New("document does not have exactly one table")
)

// Command runs one subcommand.
type Command struct {
	cfg    *config.Config
	log    *logging.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Run parses args (without the program name) and runs the selected
// subcommand. Log output goes to stderr unless a log file is configured.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("wikitable", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { usage(stderr) }
	configPath := global.String("config", "", "YAML config file")
	logLevel := global.String("log-level", "", "log level: debug, info, warn or error")
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return ErrUsage
	}

	rest := global.Args()
	if len(rest) == 0 {
		usage(stderr)
		return ErrUsage
	}
	if rest[0] == "help" {
		usage(stdout)
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logging.Configure(logrus.StandardLogger(), cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer log.Close()
	scalar.SetLogger(log)

	c := &Command{cfg: cfg, log: log, stdin: stdin, stdout: stdout, stderr: stderr}
	switch rest[0] {
	case "parse":
		err = c.Parse(rest[1:])
	case "build":
		err = c.Build(rest[1:])
	case "headers":
		err = c.Headers(rest[1:])
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", rest[0])
		usage(stderr)
		return ErrUsage
	}
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (c *Command) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return ErrUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return ErrUsage
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: wikitable [-config file] [-log-level level] <command> [flags]

Commands:
  parse    read the table of a wiki page and write its rows as records
  build    read records and write them as a wiki table
  headers  print the headers of the page's only table
  help     show this message

Run "wikitable <command> -h" for the flags of a command.
`)
}
