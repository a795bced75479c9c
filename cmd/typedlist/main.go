// Command typedlist loads a list from a YAML or JSON document into a typed
// collection and applies one collection operation to it.
//
// Usage:
//
//	typedlist --type string --input letters.yaml diff exclude.yaml
//	echo '[3, 1, 2]' | typedlist --type integer sort
//	typedlist --path data.items pad -- -6 X < doc.yaml
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-typed-collections/collections"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	cfg    Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var cfgFile string
	ownLogger := false

	root := &cobra.Command{
		Use:   "typedlist",
		Short: "Apply typed-collection operations to YAML/JSON lists",
		Long: `typedlist reads a list from a YAML or JSON document, checks every element
against the declared element type and applies a single operation.

Element types: ` + strings.Join(collections.TypeNames(), ", "),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(viper.New(), cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if a.logger == nil {
				config := zap.NewProductionConfig()
				if cfg.Verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				a.logger, err = config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				ownLogger = true
			}
			a.logger.Debug("Configuration loaded",
				zap.String("type", cfg.Type),
				zap.String("input", cfg.Input),
				zap.String("path", cfg.Path),
				zap.String("output", cfg.Output))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ownLogger && a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./typedlist.yaml)")
	flags.String("type", "mixed", "element type every item must have")
	flags.String("input", "-", "input document, - for stdin")
	flags.String("path", "", "dot-notation path of the list inside the document")
	flags.String("output", outputJSON, "output format: json or yaml")
	flags.Bool("verbose", false, "enable debug logging")

	root.AddCommand(
		newValidateCmd(a),
		newGetCmd(a),
		newSearchCmd(a),
		newUniqueCmd(a),
		newReverseCmd(a),
		newShuffleCmd(a),
		newSortCmd(a),
		newSliceCmd(a),
		newPadCmd(a),
		newPushCmd(a),
		newSpliceCmd(a),
		newDiffCmd(a),
		newIntersectCmd(a),
	)
	return root
}
