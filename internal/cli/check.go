package cli

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"litgen/internal/gen"
)

// ErrStale is returned by check when a generated file is missing or
// differs from what gen would write.
var ErrStale = errors.New("generated files are out of date")

// NewCheckCmd returns the check command.
func NewCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check that generated files are up to date",
		Long: `Check regenerates every declaration file in memory and compares the
result with the file on disk. Nothing is written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := expandAll(cmd.Context(), args, optionsFrom(v))
			if err != nil {
				return err
			}

			var stale []string

			for _, r := range results {
				isStale, err := gen.IsStale(r.path(), r.file.Content)
				if err != nil {
					return err
				}

				status := "ok"
				if isStale {
					status = "stale"

					stale = append(stale, r.path())
				}

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", status, r.path()); err != nil {
					return errors.Wrap(err, "writing output")
				}
			}

			if len(stale) > 0 {
				return errors.WithHintf(errors.Wrapf(ErrStale, "%d of %d", len(stale), len(results)),
					"run litgen gen %s", strings.Join(args, " "))
			}

			return nil
		},
	}

	addGenerationFlags(cmd)

	return cmd
}
