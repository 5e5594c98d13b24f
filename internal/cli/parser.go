package cli

import (
	"errors"
	"flag"
	"os"
)

// Common errors for control flow.
var (
	ErrShowHelp    = errors.New("show help")
	ErrShowVersion = errors.New("show version")
)

// Config holds everything a single invocation needs: the programme, the
// input files, and output formatting.
type Config struct {
	Programme  string   // the text-manipulation programme to run
	InputFiles []string // -i: input file paths; none means read stdin
	JSON       bool     // -j/--json: render output as JSON instead of text
	Interactive bool    // --interactive: run the readline-based preview loop
	ConfigFile string   // -c: explicit configuration file path
	Verbose    bool     // -v: verbose logging to stderr
	OutputFile string   // -o: write output atomically to this path instead of stdout

	// Instructions is the remainder of the command line after flags,
	// i.e. the programme itself when it isn't passed via -p.
	Instructions []string
}

// arrayFlags implements flag.Value for a flag given multiple times.
type arrayFlags []string

func (af *arrayFlags) String() string { return "" }

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

// ParseArgs parses the command line into a Config. The programme is
// taken from -p if given, otherwise from the first non-flag argument.
func ParseArgs(args []string) (*Config, error) {
	var config Config
	var inputFiles arrayFlags

	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&config.Programme, "p", "", "the programme to run (overrides the positional argument)")
	fs.Var(&inputFiles, "i", "input file path (repeatable); defaults to stdin")
	fs.BoolVar(&config.JSON, "j", false, "render output as JSON")
	fs.BoolVar(&config.JSON, "json", false, "render output as JSON")
	fs.BoolVar(&config.Interactive, "interactive", false, "run the interactive preview loop")
	fs.StringVar(&config.ConfigFile, "c", "", "configuration file path")
	fs.BoolVar(&config.Verbose, "v", false, "verbose logging")
	fs.StringVar(&config.OutputFile, "o", "", "write output atomically to this file instead of stdout")

	var showHelp, showVersion bool
	fs.BoolVar(&showHelp, "h", false, "show help")
	fs.BoolVar(&showHelp, "help", false, "show help")
	fs.BoolVar(&showVersion, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if showHelp {
		return nil, ErrShowHelp
	}
	if showVersion {
		return nil, ErrShowVersion
	}

	config.InputFiles = inputFiles
	config.Instructions = fs.Args()
	if config.Programme == "" && len(config.Instructions) > 0 {
		config.Programme = config.Instructions[0]
		config.InputFiles = append(config.InputFiles, config.Instructions[1:]...)
	}

	return &config, nil
}
