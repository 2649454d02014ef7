package main

import (
	"errors"
	"eve/internal"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const banner = "eve REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit, :reset to clear bindings."

// repl reads one line at a time and runs it in a global scope kept for
// the whole session
func repl(cfg *internal.Config, logger *logrus.Logger) int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				logger.WithError(err).Debug("cannot read history")
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(cfg.HistoryFile)
			if err != nil {
				logger.WithError(err).Warn("cannot save history")
				return
			}
			defer f.Close()
			if _, err := ln.WriteHistory(f); err != nil {
				logger.WithError(err).Warn("cannot save history")
			}
		}()
	}

	interp := internal.NewInterpreter(cfg.Options(internal.StdPrinter(), logger))
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			logger.WithError(err).Error("cannot read input")
			return 1
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit":
			return 0
		case ":reset":
			interp.Reset()
			continue
		}
		ln.AppendHistory(line)

		fmt.Println(evalLine(interp, line))
	}
}

// evalLine renders the outcome of one prompt line. Syntax and runtime
// errors are shown in red and never end the session.
func evalLine(interp *internal.Interpreter, line string) string {
	result, err := interp.Run(line)
	if err != nil {
		return color.Red(err.Error())
	}
	if _, ok := internal.ErrorMessage(result); ok {
		return color.Red(result.Inspect())
	}
	return color.Green(internal.Inspect(result))
}
