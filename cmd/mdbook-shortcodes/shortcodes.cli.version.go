package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Set at build time with -ldflags "-X main.version=..."
var (
	version   = ""
	commit    = ""
	buildTime = ""
)

// versionInfo holds version information
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

func newVersionCommand(stdout io.Writer) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: HelpVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVersion(format, stdout)
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, HelpFlagFormat)

	return cmd
}

func runVersion(format string, stdout io.Writer) error {
	v := getVersionInfo()

	switch format {
	case OutputFormatText:
		fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline, v.Version, v.Commit, v.BuildTime, v.GoVersion)
	case OutputFormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return newExitError(ExitCodeError, ErrMsgMarshalFailed, err)
		}
		fmt.Fprintln(stdout, string(data))
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return newExitError(ExitCodeError, ErrMsgMarshalFailed, err)
		}
		_, _ = stdout.Write(data)
	default:
		return newExitError(ExitCodeUsageError, ErrMsgInvalidFormat, fmt.Errorf("%q", format))
	}
	return nil
}

func getVersionInfo() *versionInfo {
	v := &versionInfo{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	// Module builds (go install) carry the version and VCS stamp
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" {
			v.Version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				v.Commit = setting.Value
			case "vcs.time":
				v.BuildTime = setting.Value
			}
		}
	}

	if version != "" {
		v.Version = version
	}
	if commit != "" {
		v.Commit = commit
	}
	if buildTime != "" {
		v.BuildTime = buildTime
	}
	return v
}
