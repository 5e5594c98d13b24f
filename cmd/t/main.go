// Command t runs a compact text-manipulation programme over stdin or a
// list of files.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/mako10k/t/internal/cli"
	"github.com/mako10k/t/internal/compiler"
	"github.com/mako10k/t/internal/errs"
	"github.com/mako10k/t/internal/interpreter"
	"github.com/mako10k/t/internal/loader"
	"github.com/mako10k/t/internal/progparser"
	"github.com/mako10k/t/internal/render"
	"github.com/mako10k/t/internal/value"
)

const (
	appName    = "t"
	appVersion = "1.0.0-dev"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	config, err := cli.ParseArgs(args)
	if err != nil {
		switch err {
		case cli.ErrShowHelp:
			showHelp()
			return 0
		case cli.ErrShowVersion:
			fmt.Printf("%s version %s\n", appName, appVersion)
			return 0
		default:
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}

	if config.Verbose {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
	}

	configPath := config.ConfigFile
	explicit := configPath != ""
	if !explicit {
		if p, err := cli.DefaultConfigPath(); err == nil {
			configPath = p
		}
	}
	fileConfig, err := cli.LoadConfigFile(configPath, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	programme := config.Programme
	if programme == "" {
		programme = fileConfig.DefaultProgramme
	}
	jsonOutput := config.JSON || fileConfig.JSON

	if config.Interactive {
		return runInteractive(config, programme)
	}

	root, err := loadInput(config.InputFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	nodes, err := progparser.Parse(programme)
	if err != nil {
		reportError(programme, err)
		return 1
	}
	transforms, err := compiler.Compile(nodes)
	if err != nil {
		reportError(programme, err)
		return 1
	}

	ctx := interpreter.NewContext(root)
	if err := interpreter.Run(transforms, ctx); err != nil {
		reportError(programme, err)
		return 1
	}

	var rendered string
	if jsonOutput {
		out, err := render.JSON(ctx.Value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		rendered = string(out) + "\n"
	} else {
		rendered = render.Text(ctx.Value)
	}

	if config.OutputFile != "" {
		if err := renameio.WriteFile(config.OutputFile, []byte(rendered), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", config.OutputFile, err)
			return 1
		}
		return 0
	}

	fmt.Print(rendered)
	return 0
}

func loadInput(files []string) (value.Value, error) {
	if len(files) == 0 {
		return loader.FromStdin()
	}
	return loader.FromFiles(files)
}

func reportError(programme string, err error) {
	var e *errs.Error
	if errors.As(err, &e) {
		fmt.Fprintln(os.Stderr, errs.Caret(programme, e))
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
