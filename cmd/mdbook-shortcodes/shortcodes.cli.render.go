package main

import (
	"io"
	"os"

	"github.com/google/renameio"
	"github.com/spf13/cobra"
	"github.com/tsoutsman/mdbook-shortcodes"
	"go.uber.org/zap"
)

// renderOptions holds parsed render command configuration
type renderOptions struct {
	outputPath string
	inPlace    bool
}

func newRenderCommand(root *rootOptions, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     CmdNameRender + " [FILE|-]",
		Short:   HelpRenderShort,
		Example: HelpRenderExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			inputPath := InputSourceStdin
			if len(args) == 1 {
				inputPath = args[0]
			}
			return runRender(root, opts, inputPath, stdin, stdout, stderr)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, HelpFlagOutput)
	cmd.Flags().BoolVarP(&opts.inPlace, FlagInPlace, FlagInPlaceShort, false, HelpFlagInPlace)

	return cmd
}

func runRender(root *rootOptions, opts *renderOptions, inputPath string, stdin io.Reader, stdout, stderr io.Writer) error {
	outputPath := opts.outputPath
	if opts.inPlace {
		if inputPath == InputSourceStdin {
			return newExitError(ExitCodeUsageError, ErrMsgInPlaceNeedsFile, nil)
		}
		if outputPath != FlagDefaultOutput {
			return newExitError(ExitCodeUsageError, ErrMsgInPlaceAndOutput, nil)
		}
		outputPath = inputPath
	}

	source, err := readInput(inputPath, stdin)
	if err != nil {
		return err
	}

	engine, logger, err := root.setup(shortcodes.DefaultConfig(), stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug(LogMsgRender,
		zap.String(LogFieldInput, inputPath),
		zap.String(LogFieldOutput, outputPath),
	)

	result, err := engine.Process(string(source))
	if err != nil {
		return transformError(err)
	}

	if err := writeOutput(outputPath, []byte(result), stdout); err != nil {
		return newExitError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, newExitError(ExitCodeInputError, ErrMsgReadStdinFailed, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newExitError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	return data, nil
}

// writeOutput writes content to stdout, or atomically replaces the file at path
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return renameio.WriteFile(path, data, FilePermissions)
}
