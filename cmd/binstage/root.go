package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ZebulonRouseFrantzich/binstage/internal/config"
	"github.com/ZebulonRouseFrantzich/binstage/internal/platform"
	"github.com/ZebulonRouseFrantzich/binstage/internal/provision"
)

const (
	envPrefix  = "BINSTAGE"
	dotEnvFile = ".env"
)

// Flag names double as viper keys; the matching environment variable is
// BINSTAGE_ followed by the upper-cased name with dashes as underscores.
const (
	flagMetadata          = "metadata"
	flagStagingRoot       = "staging-root"
	flagToolName          = "tool-name"
	flagInstallDir        = "install-dir"
	flagInstallDirCommand = "install-dir-command"
	flagStrict            = "strict"
	flagLogLevel          = "log-level"
)

// app holds the process-level dependencies of the CLI.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	detector platform.Detector
	v        *viper.Viper
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		detector: platform.NewDetector(),
		v:        viper.New(),
	}
}

// settings is the resolved configuration for one invocation.
type settings struct {
	Metadata          string
	StagingRoot       string
	ToolName          string
	InstallDir        string
	InstallDirCommand string
	Strict            bool
	LogLevel          string
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "binstage [flags] install|uninstall",
		Short: "Install or remove a prebuilt platform binary",
		Long: `binstage copies the prebuilt binary matching this machine out of the
staging tree (<staging-root>/<tool>_<os>_<arch>/<name>) into the
installation directory, or removes it again.

Every flag can also be set through a BINSTAGE_* environment variable or a
.env file in the working directory.`,
		Version:       Version,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			// Parse the command before reading any configuration so an
			// unknown command never reaches the filesystem.
			command, err := provision.ParseCommand(name)
			if err != nil {
				return err
			}

			if err := loadDotEnv(dotEnvFile); err != nil {
				return err
			}

			return a.execute(cmd.Context(), command, a.settings())
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	a.bindFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive(flagInstallDir, flagInstallDirCommand)
	return cmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageError{fmt.Errorf("expected a single command, got %d arguments", len(args))}
	}
	return nil
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.String(flagMetadata, config.DefaultMetadataFile, "package metadata file (.json, .yaml, .yml or .lua)")
	flags.String(flagStagingRoot, provision.DefaultStagingRoot, "root of the staged binary tree")
	flags.String(flagToolName, "", "tool name used in staging directory names (default: binary name)")
	flags.String(flagInstallDir, "", "install into this directory instead of the metadata setting")
	flags.String(flagInstallDirCommand, "", "command whose output is the installation directory")
	flags.Bool(flagStrict, false, "fail uninstall when the binary is not installed")
	flags.String(flagLogLevel, "info", "log level: debug, info, warn or error")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	// BindPFlags only fails on a nil flag set.
	_ = a.v.BindPFlags(flags)
}

func (a *app) settings() settings {
	return settings{
		Metadata:          a.v.GetString(flagMetadata),
		StagingRoot:       a.v.GetString(flagStagingRoot),
		ToolName:          a.v.GetString(flagToolName),
		InstallDir:        a.v.GetString(flagInstallDir),
		InstallDirCommand: a.v.GetString(flagInstallDirCommand),
		Strict:            a.v.GetBool(flagStrict),
		LogLevel:          a.v.GetString(flagLogLevel),
	}
}

func (a *app) verbose() bool {
	return strings.EqualFold(a.v.GetString(flagLogLevel), "debug")
}

// loadDotEnv exports the variables in path unless they are already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
