package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xshoji/go-img-stack/config"
	"github.com/xshoji/go-img-stack/console"
	"github.com/xshoji/go-img-stack/imageutil"
	"github.com/xshoji/go-img-stack/logging"
)

const envPrefix = "IMGSTACK"

// rootOptions はコマンド実行後も参照する値
type rootOptions struct {
	noColor bool
}

// newRootCommand はルートコマンドを作成する
func newRootCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgstack [flags] [file...]",
		Short: "Stack images vertically into a single PNG.",
		Long: `imgstack loads the listed images from the base directory and stacks them
top-to-bottom on a white canvas. The canvas is as wide as the widest image and
as tall as all images combined. Missing files are reported and skipped.

Positional arguments replace the file list from the config file or the
built-in default list.`,
		Example: `  imgstack
  imgstack -b ~/shots -o combined.png page_1.png page_2.png
  imgstack -c stack.yaml --log-level debug`,
		Args:          cobra.ArbitraryArgs,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	defaults := config.NewDefaultConfig()
	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Config file (.yaml, .yml, .json or .jsonc)")
	flags.StringP("base-dir", "b", defaults.BaseDir, "Directory the input files are read from")
	flags.StringP("output", "o", defaults.OutputPath, "Output PNG path (overwritten if it exists)")
	flags.String("compression", string(defaults.Compression), "PNG compression: default, none, fast or best")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	flags.Bool("no-color", defaults.NoColor, "Disable colored output")
	// 設定ファイルのキーと同じ綴り（base_dir など）も受け付ける
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return withExitCode(exitConfigError, err)
		}

		cfg, err := buildConfig(v, args)
		opts.noColor = v.GetBool("no-color")
		if err != nil {
			return withExitCode(exitConfigError, err)
		}

		logger, err := logging.New(cfg.LogLevel, stderr)
		if err != nil {
			return withExitCode(exitConfigError, err)
		}
		defer func() { _ = logger.Sync() }()

		printer := console.NewPrinter(stdout, stderr, cfg.NoColor)
		return processImages(cfg, logger, printer)
	}

	return cmd
}

// buildConfig はデフォルト値・設定ファイル・環境変数・フラグ・引数の順に設定を重ねる
func buildConfig(v *viper.Viper, args []string) (*config.AppConfig, error) {
	cfg := config.NewDefaultConfig()

	if path := v.GetString("config"); path != "" {
		manifest, err := config.LoadManifest(path)
		if err != nil {
			return nil, err
		}
		cfg.ApplyManifest(manifest)
	}

	if v.IsSet("base-dir") {
		cfg.BaseDir = v.GetString("base-dir")
	}
	if v.IsSet("output") {
		cfg.OutputPath = v.GetString("output")
	}
	if v.IsSet("compression") {
		cfg.Compression = config.Compression(v.GetString("compression"))
	}
	cfg.LogLevel = v.GetString("log-level")
	cfg.NoColor = v.GetBool("no-color")

	if len(args) > 0 {
		cfg.Files = args
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// processImages 画像処理のメインフロー
func processImages(cfg *config.AppConfig, logger *zap.Logger, printer *console.Printer) error {
	startTime := time.Now()
	logger.Debug("resolved config",
		zap.String("base_dir", cfg.BaseDir),
		zap.Strings("files", cfg.Files),
		zap.String("output", cfg.OutputPath),
		zap.String("compression", string(cfg.Compression)))

	stacker := imageutil.NewStacker(cfg, logger, printer)
	if _, err := stacker.Run(); err != nil {
		return err
	}

	logger.Info("total processing completed", zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
