package main

import (
	"eve/internal"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("eve", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to an eve.yaml configuration file")
	code := fs.String("e", "", "evaluate code and exit")
	tokens := fs.Bool("tokens", false, "print the tokens instead of running")
	ast := fs.Bool("ast", false, "print the parsed program instead of running")
	logLevel := fs.String("log-level", "", "override the configured log level")
	elapsed := fs.Bool("time", false, "report the time spent running")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: eve [flags] [/path/to/source.eve]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := internal.DefaultConfig()
	if *configPath != "" {
		loaded, err := internal.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		cfg = loaded
	}
	if *logLevel != "" {
		if _, err := logrus.ParseLevel(*logLevel); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		cfg.LogLevel = *logLevel
	}

	logger := cfg.Logger(os.Stderr)
	logrus.SetLevel(cfg.Level())

	var source string
	switch {
	case *code != "":
		source = *code
	case fs.NArg() == 1:
		b, err := readSource(fs.Arg(0))
		if err != nil {
			logger.WithError(err).Error("cannot read script")
			return 1
		}
		source = b
	case fs.NArg() > 1:
		fs.Usage()
		return 2
	default:
		if !cfg.Color {
			color.Disable()
		}
		return repl(cfg, logger)
	}

	color.Disable()
	switch {
	case *tokens:
		return printDiagnostic(internal.StdPrinter(), internal.Tokens)(source)
	case *ast:
		return printDiagnostic(internal.StdPrinter(), internal.ParseTree)(source)
	}

	out := internal.StdPrinter()
	start := time.Now()
	status := runSource(out, source, cfg, logger, *code != "")
	if *elapsed {
		out.Fprintf(os.Stderr, "Time elapsed is: %s\n", time.Since(start))
	}
	return status
}

func readSource(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// runSource runs a whole script. The value of the last statement is only
// shown for -e.
func runSource(out internal.IPrinter, source string, cfg *internal.Config, logger *logrus.Logger, show bool) int {
	result, err := internal.RunWithOptions(source, nil, cfg.Options(out, logger))
	if err != nil {
		out.Fprintln(os.Stderr, err)
		return 65
	}
	if _, ok := internal.ErrorMessage(result); ok {
		out.Fprintln(os.Stderr, result.Inspect())
		return 70
	}
	if show {
		out.Println(internal.Inspect(result))
	}
	return 0
}

// printDiagnostic wraps Tokens and ParseTree for the -tokens and -ast modes
func printDiagnostic(out internal.IPrinter, dump func(string) (string, error)) func(string) int {
	return func(source string) int {
		text, err := dump(source)
		if err != nil {
			out.Fprintln(os.Stderr, err)
			return 65
		}
		out.Println(text)
		return 0
	}
}
