// Package cmd implements the xrect command line tool, which exposes
// the anchor resize engine for scripting and inspection.
package cmd

import (
	"fmt"
	"os"

	"deedles.dev/xrect/internal/config"
	"deedles.dev/xrect/internal/observability"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by every subcommand of a single root
// command.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
}

// NewRootCmd returns a fresh xrect command tree.
func NewRootCmd() *cobra.Command {
	a := app{
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	var cfgFile string
	root := &cobra.Command{
		Use:           "xrect",
		Short:         "Resize rectangles by dragging their anchors.",
		Long:          "xrect resizes axis-aligned rectangles in a Cartesian plane by dragging one of their eight anchors while the opposite anchor stays fixed.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./xrect.yaml)")
	flags.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("logger.level", flags.Lookup("log-level"))

	root.AddCommand(
		newAnchorsCmd(&a),
		newPosCmd(&a),
		newHitCmd(&a),
		newTransformCmd(&a),
		newReplayCmd(&a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command, cfgFile string) error {
	err := config.Read(a.v, cfgFile)
	if err != nil {
		return err
	}

	a.cfg, err = config.Load(a.v)
	if err != nil {
		return err
	}

	logger, err := observability.New(a.cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("config loaded", zap.String("file", a.v.ConfigFileUsed()), zap.String("output", a.cfg.Output))

	return nil
}

// Execute runs the root command and exits the process on failure.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "xrect: %v\n", err)
		os.Exit(1)
	}
}
