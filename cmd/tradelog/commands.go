package main

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"tradelog/internal/config"
	"tradelog/internal/i18n"
	"tradelog/pkg/log"
)

// 命令行参数
type options struct {
	configPath string
	level      string
	file       string
}

// app 命令行程序，持有本次运行创建的日志设施
type app struct {
	root     *cobra.Command
	facility *log.Facility
}

// execute 执行命令；无论命令是否出错都关闭日志文件
func (a *app) execute() error {
	err := a.root.Execute()
	if a.facility != nil {
		if closeErr := a.facility.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

func newApp() *app {
	a := &app{}
	opts := &options{}

	desc := i18n.GetRootCommand()
	rootCmd := &cobra.Command{
		Use:           desc.Use,
		Short:         desc.Short,
		Long:          desc.Long,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := setupFacility(cmd, opts)
			if err != nil {
				return err
			}
			a.facility = f
			cmd.SetContext(log.NewContext(cmd.Context(), f))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", i18n.GetFlagDesc("config"))
	flags.StringVar(&opts.level, "level", "", i18n.GetFlagDesc("level"))
	flags.StringVar(&opts.file, "file", "", i18n.GetFlagDesc("file"))

	rootCmd.AddCommand(newEmitCmd(), newStressCmd())
	a.root = rootCmd
	return a
}

// setupFacility 依次应用配置文件和命令行参数
func setupFacility(cmd *cobra.Command, opts *options) (*log.Facility, error) {
	f := log.New(log.WithConsole(cmd.OutOrStdout()))
	ctx := log.NewContext(cmd.Context(), f)

	logging := config.LoggingConfig{}
	if opts.configPath != "" {
		cfg := config.NewConfigAt(cmd.Root().Name(), opts.configPath)
		if err := cfg.Init(ctx); err != nil {
			return nil, err
		}
		logging = cfg.Logging()
	}
	if cmd.Flags().Changed("level") {
		logging.Level = opts.level
	}
	if cmd.Flags().Changed("file") {
		logging.File = opts.file
	}

	if err := logging.Apply(f); err != nil {
		return nil, err
	}
	return f, nil
}

func newEmitCmd() *cobra.Command {
	var (
		line   int
		source string
	)

	d := i18n.GetCommand("emit")
	cmd := &cobra.Command{
		Use:   d.Use,
		Short: d.Short,
		Long:  d.Long,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseSeverity(args[0])
			if err != nil {
				return errors.Wrap(err, "emit")
			}

			var loc *log.Location
			if cmd.Flags().Changed("line") || cmd.Flags().Changed("source") {
				at := log.At(line, source)
				loc = &at
			}

			log.FromContext(cmd.Context()).Log(level, loc, "%s", strings.Join(args[1:], " "))
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, i18n.GetFlagDesc("line"))
	cmd.Flags().StringVar(&source, "source", "", i18n.GetFlagDesc("source"))
	return cmd
}

func newStressCmd() *cobra.Command {
	var workers, lines int

	d := i18n.GetCommand("stress")
	cmd := &cobra.Command{
		Use:   d.Use,
		Short: d.Short,
		Long:  d.Long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 || lines < 1 {
				return errors.Newf("workers and lines must be positive, got %d and %d", workers, lines)
			}
			f := log.FromContext(cmd.Context())
			lineFormat := i18n.GetMessage("stress_line")

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for i := 0; i < lines; i++ {
						f.Info(lineFormat, w, i)
					}
				}(w)
			}
			wg.Wait()

			f.Critical("%s", i18n.GetMessage("stress_done", workers, workers*lines))
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, i18n.GetFlagDesc("workers"))
	cmd.Flags().IntVar(&lines, "lines", 100, i18n.GetFlagDesc("lines"))
	return cmd
}
