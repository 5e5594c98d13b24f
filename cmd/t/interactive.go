package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/cli"
	"github.com/mako10k/t/internal/compiler"
	"github.com/mako10k/t/internal/interpreter"
	"github.com/mako10k/t/internal/ops"
	"github.com/mako10k/t/internal/progparser"
	"github.com/mako10k/t/internal/render"
	"github.com/mako10k/t/internal/value"
)

// previewTruncateSize bounds how many rows of the root value are fed to
// a programme that contains no full-input transform, so the preview
// stays responsive against a large loaded input.
const previewTruncateSize = 200

// runInteractive drives the readline-based preview loop: the user edits
// the programme, and after every Enter the pipeline re-runs against the
// loaded input and prints a preview below the prompt.
func runInteractive(config *cli.Config, initialProgramme string) int {
	root, err := loadInput(config.InputFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "t> ",
		HistoryFile:     os.ExpandEnv("$HOME/.t_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer rl.Close()

	if initialProgramme != "" {
		preview(initialProgramme, root)
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				fmt.Println()
				break
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}
		preview(line, root)
	}

	return 0
}

// preview parses and runs programme against root. While the user is
// still mid-way through typing an operator's trailing argument (a
// regex literal, a delimiter, a selection), the full text often doesn't
// parse yet; preview retries against successively shorter prefixes of
// the already-successfully-parsed operator boundary until one parses,
// so the preview never goes blank on a single incomplete keystroke.
func preview(programme string, root value.Value) {
	nodes, parsedPrefix, err := parseLongestPrefix(programme)
	if err != nil {
		fmt.Println(err)
		return
	}

	transforms, err := compiler.Compile(nodes)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx := interpreter.NewContext(previewInput(root, transforms))
	if err := interpreter.Run(transforms, ctx); err != nil {
		fmt.Println(err)
		return
	}

	if parsedPrefix != programme {
		fmt.Printf("(parsed %q)\n", parsedPrefix)
	}
	fmt.Print(render.Text(ctx.Value))
}

// previewInput decides whether the preview may run against a truncated
// prefix of root: if no transform in the pipeline requires full input,
// a large loaded file would otherwise make every keystroke re-scan the
// whole thing for no visible benefit in the preview pane.
func previewInput(root value.Value, transforms []ops.Transform) value.Value {
	for _, tr := range transforms {
		if tr.RequiresFullInput() {
			return root
		}
	}
	arr, ok := root.AsArray()
	if !ok || arr.Len() <= previewTruncateSize {
		return root
	}
	return value.ArrayValue(arr.TruncatedCopy(previewTruncateSize))
}

// parseLongestPrefix finds the longest prefix of programme that parses
// cleanly, trying the full string first and then shaving one byte at a
// time off the end. Since the parser only ever fails mid-operator (an
// unterminated regex, a dangling selection), this converges quickly in
// practice even though it's a linear scan.
func parseLongestPrefix(programme string) ([]ast.Node, string, error) {
	for end := len(programme); end > 0; end-- {
		prefix := programme[:end]
		nodes, err := progparser.Parse(prefix)
		if err == nil {
			return nodes, prefix, nil
		}
	}
	_, err := progparser.Parse(programme)
	return nil, "", err
}
