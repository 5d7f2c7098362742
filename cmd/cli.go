package cmd

import (
	"fmt"
	"strconv"

	"bitwise/internal/config"
	"bitwise/internal/eval"
	"bitwise/pkg/build"

	"github.com/spf13/cobra"
)

// Commands that main knows how to run.
const (
	CommandEval  = "eval"
	CommandServe = "serve"
	CommandOps   = "ops"
)

// Invocation is the parsed command line: the final configuration and what
// to do with it. Command is empty when cobra already handled the call
// (help, version).
type Invocation struct {
	Command string
	Config  *config.Config
	Request eval.Request
}

// operand layouts for evaluation subcommands
const (
	argsSequence = iota // one or more values
	argsUnary           // N
	argsBinary          // A B
	argsBit             // N INDEX
)

type opCommand struct {
	name  string
	use   string
	short string
	args  int
}

var opCommands = []opCommand{
	{"single", "single VALUE...", "Find the value that appears once among pairs", argsSequence},
	{"thrice", "thrice VALUE...", "Find the value that appears once among triples", argsSequence},
	{"pair", "pair VALUE...", "Find the two values that appear once among pairs", argsSequence},
	{"xor-range", "xor-range A B", "XOR of every integer in [A, B]", argsBinary},
	{"divide", "divide DIVIDEND DIVISOR", "Divide without multiplication or division", argsBinary},
	{"swap", "swap X Y", "Swap two values with XOR", argsBinary},
	{"flips", "flips A B", "Number of bit flips turning A into B", argsBinary},
	{"bit-test", "bit-test N INDEX", "Report whether bit INDEX of N is set", argsBit},
	{"bit-get", "bit-get N INDEX", "Extract bit INDEX of N", argsBit},
	{"bit-set", "bit-set N INDEX", "Set bit INDEX of N", argsBit},
	{"bit-clear", "bit-clear N INDEX", "Clear bit INDEX of N", argsBit},
	{"bit-toggle", "bit-toggle N INDEX", "Toggle bit INDEX of N", argsBit},
	{"clear-lowest", "clear-lowest N", "Remove the lowest set bit of N", argsUnary},
	{"lowest-bit", "lowest-bit N", "Isolate the lowest set bit of N", argsUnary},
	{"count", "count N", "Count the set bits of N", argsUnary},
	{"pow2", "pow2 N", "Report whether N is a power of two", argsUnary},
	{"next-pow2", "next-pow2 N", "Smallest power of two >= N", argsUnary},
}

// ParseArgs parses args (without the program name) into an Invocation.
func ParseArgs(args []string) (*Invocation, error) {
	buildInfo := build.GetBuildFlags()
	inv := &Invocation{}

	var (
		configPath string
		width      int
		output     string
		verbose    bool
		serveAddr  string
		servePath  string
		subsetSize int
	)

	// finalize loads the configuration and applies flags that were set
	// explicitly, so flags win over the file and the environment.
	finalize := func(cmd *cobra.Command, command string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("width") {
			cfg.Width = width
		}
		if flags.Changed("output") {
			cfg.Output = output
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		if flags.Changed("addr") {
			cfg.Server.Address = serveAddr
		}
		if flags.Changed("path") {
			cfg.Server.Path = servePath
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid flags: %w", err)
		}

		inv.Command = command
		inv.Config = cfg
		return nil
	}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         buildInfo.Description,
		Long:          buildInfo.Description + "\n\nNegative operands go after \"--\", e.g. 'divide -- -7 2'.",
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
	}
	rootCmd.SetVersionTemplate(buildInfo.String() + "\n")

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Evaluation commands
	for _, oc := range opCommands {
		rootCmd.AddCommand(&cobra.Command{
			Use:   oc.use,
			Short: oc.short,
			Args:  operandArgs(oc.args),
			RunE: func(cmd *cobra.Command, args []string) error {
				req, err := buildRequest(oc, args)
				if err != nil {
					return err
				}
				inv.Request = req
				return finalize(cmd, CommandEval)
			},
		})
	}

	subsetsCmd := &cobra.Command{
		Use:   "subsets VALUE...",
		Short: "List every subset of the values (or only those of --size)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			inv.Request = eval.Request{Op: "subsets", Values: values}
			if cmd.Flags().Changed("size") {
				inv.Request.B = eval.Int64(int64(subsetSize))
			}
			return finalize(cmd, CommandEval)
		},
	}
	subsetsCmd.Flags().IntVarP(&subsetSize, "size", "k", 0, "Only list subsets with this many elements")
	rootCmd.AddCommand(subsetsCmd)

	// Server command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer JSON evaluation requests over WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return finalize(cmd, CommandServe)
		},
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", config.DefaultServerAddress, "Listen address")
	serveCmd.Flags().StringVar(&servePath, "path", config.DefaultServerPath, "WebSocket upgrade path")
	rootCmd.AddCommand(serveCmd)

	// List command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "ops",
		Short: "List the operations accepted by serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return finalize(cmd, CommandOps)
		},
	})

	// Configuration
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "",
		"Path to a YAML config file. Default is ./"+config.DefaultConfigFile+" when present")
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", config.DefaultWidth,
		"Register width in bits (32 or 64)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", config.DefaultOutput,
		"Output format (text or json)")

	// Debug Configuration
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Show verbose output")

	// Execute the CLI
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	return inv, nil
}

func operandArgs(layout int) cobra.PositionalArgs {
	switch layout {
	case argsSequence:
		return cobra.MinimumNArgs(1)
	case argsUnary:
		return cobra.ExactArgs(1)
	default:
		return cobra.ExactArgs(2)
	}
}

func buildRequest(oc opCommand, args []string) (eval.Request, error) {
	values, err := parseInts(args)
	if err != nil {
		return eval.Request{}, err
	}

	req := eval.Request{Op: oc.name}
	switch oc.args {
	case argsSequence:
		req.Values = values
	case argsUnary:
		req.A = eval.Int64(values[0])
	default:
		req.A = eval.Int64(values[0])
		req.B = eval.Int64(values[1])
	}
	return req, nil
}

func parseInts(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not an integer: %w", i+1, arg, err)
		}
		values[i] = v
	}
	return values, nil
}
