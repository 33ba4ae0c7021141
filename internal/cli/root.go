// Package cli implements the litgen command line.
package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"litgen/internal/logger"
)

// Configuration keys, shared by flags, LITGEN_* variables and the config
// file.
const (
	keyConfig         = "config"
	keyLogLevel       = "log-level"
	keyLogFormat      = "log-format"
	keyOutput         = "output"
	keyAccessor       = "accessor"
	keyDryRun         = "dry-run"
	keyResolvePackage = "resolve-package"
)

const (
	envPrefix      = "LITGEN"
	configFileName = ".litgen"
)

const rootDesc = `litgen expands declaration files into Go source.

A declaration file lists map constructors and marker types:

  version: "1"
  maps:
    - name: Primes
      exported: true
      key: uint32
      value: uint32
      entries: "1 => 2, 3 => 4, 5 => 6"
  getters: |
    Foo: uint32 = 10;
    export Bar: uint32 = 42;

Each marker type implements get.Getter[T] and returns its literal.
Settings may also come from LITGEN_* environment variables or a
.litgen.yaml file in the working directory.`

// NewRootCmd returns the litgen command with its subcommands.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "litgen",
		Short:         "Generate Go map constructors and marker types from declarations",
		Long:          rootDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(keyConfig, "", "Config file (default: ./.litgen.yaml when present)")
	cmd.PersistentFlags().String(keyLogLevel, "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String(keyLogFormat, logger.FormatConsole, "Set the log format (console, json)")

	if err := cmd.MarkPersistentFlagFilename(keyConfig, "yaml", "yml"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		if err := loadConfig(v, cc); err != nil {
			return err
		}

		if err := logger.Initialize(v.GetString(keyLogLevel), v.GetString(keyLogFormat)); err != nil {
			return err
		}

		if used := v.ConfigFileUsed(); used != "" {
			logger.Logger.Debugw("loaded config", "file", used)
		}

		return nil
	}

	cmd.AddCommand(NewGenCmd(v))
	cmd.AddCommand(NewCheckCmd(v))

	return cmd
}

// loadConfig binds the flags of the running command and reads the config
// file. Precedence: flags, environment, config file, flag defaults.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", path)
		}

		return nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "reading config")
		}
	}

	return nil
}
