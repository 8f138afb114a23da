// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"unsafe"

	"github.com/H0llyW00dzZ/ffi-greeter/src/config"
	"github.com/H0llyW00dzZ/ffi-greeter/src/contract"
	"github.com/H0llyW00dzZ/ffi-greeter/src/cstring"
	"github.com/H0llyW00dzZ/ffi-greeter/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/ffi-greeter/src/logger"
	"github.com/spf13/cobra"
)

// Producer modes accepted by the greet command.
const (
	ModeChecked       = "checked"
	ModeUnchecked     = "unchecked"
	ModeUnconditional = "unconditional"
)

// Output formats accepted by the contract command.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

var (
	// ErrUnknownMode is returned for a --mode value that names no producer.
	ErrUnknownMode = errors.New("unknown greet mode")
	// ErrNullUnchecked is returned instead of handing a null name to the unchecked producer.
	ErrNullUnchecked = errors.New("a null name is undefined behavior for the unchecked producer")
	// ErrUnknownFormat is returned for a --format value the contract command cannot render.
	ErrUnknownFormat = errors.New("unknown contract format")
)

// Execute runs the root command against os.Args.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Flag state lives in the returned
// command, so each call gives an independent CLI.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          posix.GetExecutableName(),
		Short:        "Drive the greeter producers through their ownership contract",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		fmt.Sprintf("config file (.json, .yaml, .yml) (default: $%s)", config.EnvConfigFile))

	rootCmd.AddCommand(
		newGreetCommand(&configPath, log),
		newContractCommand(),
	)
	return rootCmd
}

func newGreetCommand(configPath *string, log logger.Logger) *cobra.Command {
	var (
		mode    string
		null    bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "greet [NAME]",
		Short: "Produce a greeting, print it, and reclaim it",
		Long: `Produce a greeting with one of the three producers, print it, and reclaim it.

Without NAME, or with --null, the name handle is null. The checked producer
answers that with the fallback greeting. The unchecked producer would be
undefined behavior, so the command refuses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			builder := cfg.GreeterBuilder()
			if verbose {
				builder.WithLogger(log)
			} else {
				l, err := cfg.Logger()
				if err != nil {
					return err
				}
				builder.WithLogger(l)
			}

			var name unsafe.Pointer
			if len(args) == 1 && !null {
				name = cstring.Borrowed(args[0])
			}

			out, err := produce(mode, builder.Build(), name)
			if err != nil {
				return err
			}
			defer func() {
				if verbose {
					log.Printf("reclaiming handle %p", out.Pointer())
				}
				out.Release()
			}()

			if verbose {
				log.Printf("%s producer returned handle %p holding %d bytes", mode, out.Pointer(), out.Len())
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", ModeChecked,
		fmt.Sprintf("producer to call: %s, %s or %s", ModeChecked, ModeUnchecked, ModeUnconditional))
	cmd.Flags().BoolVar(&null, "null", false, "pass a null name handle")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log handle addresses, lengths and reclamation")
	return cmd
}

// produce calls the producer selected by mode. A nil name is only accepted by
// the producers that are defined for it.
func produce(mode string, g *cstring.Greeter, name unsafe.Pointer) (cstring.Owned, error) {
	switch mode {
	case ModeChecked:
		return g.Greet(name), nil
	case ModeUnchecked:
		if name == nil {
			return cstring.Owned{}, ErrNullUnchecked
		}
		return cstring.GreetUnchecked(name), nil
	case ModeUnconditional:
		return cstring.Greeting(), nil
	default:
		return cstring.Owned{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func newContractCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Print the C ABI surface and the safety class of each export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := contract.Operations()

			var (
				out string
				err error
			)
			switch format {
			case FormatMarkdown:
				out, err = contract.RenderTable(ops)
			case FormatJSON:
				out, err = contract.RenderJSON(ops)
			default:
				return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatMarkdown,
		fmt.Sprintf("output format: %s or %s", FormatMarkdown, FormatJSON))
	return cmd
}
