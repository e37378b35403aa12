package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-bytecode/config"
	"github.com/wippyai/wasm-bytecode/engine"
)

type rootCommand struct {
	gs     *globalState
	cmd    *cobra.Command
	logger *zap.Logger
	cfg    config.Config

	configPath string
	maxDepth   int
	maxInput   int
	logLevel   string
	color      string
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}
	c.cmd = &cobra.Command{
		Use:               "wasmdec",
		Short:             "Decode WebAssembly bytecode",
		Long:              "Decode WebAssembly function bodies into instruction trees.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetIn(gs.stdin)
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())

	c.cmd.AddCommand(
		getCmdDecode(c),
		getCmdInspect(c),
		getCmdOpcodes(c),
	)
	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(&c.configPath, "config", "c", "", "TOML config file")
	flags.IntVar(&c.maxDepth, "max-depth", 0, "maximum block nesting depth, 0 for no limit (overrides config)")
	flags.IntVar(&c.maxInput, "max-input", 0, "maximum input size in bytes, 0 for no limit (overrides config)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	flags.StringVar(&c.color, "color", "auto", "colorize output: auto, always or never")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadWithEnv(c.gs.fs, c.configPath, c.gs.lookupEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		cfg.Decode.MaxNestingDepth = c.maxDepth
	}
	if flags.Changed("max-input") {
		cfg.Decode.MaxInputSize = c.maxInput
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch c.color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", c.color)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	engine.SetLogger(logger)
	logger.Debug("configuration loaded",
		zap.String("path", c.configPath),
		zap.Int("max_nesting_depth", cfg.Decode.MaxNestingDepth),
		zap.Int("max_input_size", cfg.Decode.MaxInputSize))
	return nil
}

func (c *rootCommand) execute() error {
	err := c.cmd.Execute()
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(c.gs.stderr, "Error: %v\n", err)
	}
	return err
}
