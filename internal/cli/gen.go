package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"litgen/internal/gen"
	"litgen/internal/logger"
)

const genExample = `  # Expand a declaration file next to it
  litgen gen literals.yaml

  # From a go:generate directive
  //go:generate go run litgen/cmd/litgen gen literals.yaml

  # Print the generated code instead of writing it
  litgen gen --dry-run literals.yaml`

// NewGenCmd returns the gen command.
func NewGenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen FILE...",
		Short:   "Generate Go files from declaration files",
		Example: genExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := expandAll(cmd.Context(), args, optionsFrom(v))
			if err != nil {
				return err
			}

			dryRun := v.GetBool(keyDryRun)

			for _, r := range results {
				if dryRun {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", r.path(), r.file.Content); err != nil {
						return errors.Wrap(err, "writing output")
					}

					continue
				}

				if err := gen.WriteFiles([]gen.GeneratedFile{*r.file}, r.dir); err != nil {
					return errors.Wrapf(err, "%s", r.source)
				}

				logger.Logger.Infow("generated", "source", r.source, "file", r.path())
			}

			return nil
		},
	}

	addGenerationFlags(cmd)
	cmd.Flags().StringP(keyOutput, "o", "", "Generated file name (default: <snake_case(source)>_gen.go)")
	cmd.Flags().Bool(keyDryRun, false, "Print generated code to stdout instead of writing files")

	return cmd
}

// addGenerationFlags adds the flags gen and check share.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().String(keyAccessor, "", "Import path of the package defining Getter (default: litgen/get)")
	cmd.Flags().Bool(keyResolvePackage, true, "Load the output directory with go/packages to find its package")
}

func optionsFrom(v *viper.Viper) options {
	return options{
		output:         v.GetString(keyOutput),
		accessor:       v.GetString(keyAccessor),
		resolvePackage: v.GetBool(keyResolvePackage),
	}
}
