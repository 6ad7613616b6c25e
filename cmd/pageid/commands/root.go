package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/macropower/pageid/internal/config"
	"github.com/macropower/pageid/internal/render"
	"github.com/macropower/pageid/pkg/log"
	"github.com/macropower/pageid/pkg/pagepath"
	"github.com/macropower/pageid/pkg/paths"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrConfigFailed     = errors.New("config failed")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrRootFailed       = errors.New("root directory failed")

	allocsProfile *pprof.Profile
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVar(args.root, "root", "", "Project root directory (discovered from the working directory when empty)")
	cmd.PersistentFlags().StringVar(args.configFile, "config", "", "Path to a YAML config file (default "+config.DefaultFile+" if present)")
	cmd.PersistentFlags().StringVarP(args.output, "output", "o", "text", "Set the output format (text, json, yaml)")

	cmd.PersistentFlags().StringVar(args.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	cmd.PersistentFlags().StringVar(args.memProfile, "memprofile", "", "Write a memory profile to this file")
	cmd.PersistentFlags().
		IntVar(args.memProfileRate, "memprofile_rate", 512*1024, "Memory profiling rate as a fraction")

	must(cmd.MarkPersistentFlagFilename("config", "yaml", "yml"))
	must(cmd.MarkPersistentFlagFilename("cpuprofile"))
	must(cmd.MarkPersistentFlagFilename("memprofile"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		if args.GetCPUProfile() != "" {
			f, err := os.Create(args.GetCPUProfile())
			if err != nil {
				return fmt.Errorf("failed to create CPU profile: %w", err)
			}

			err = pprof.StartCPUProfile(f)
			if err != nil {
				must(f.Close())

				return fmt.Errorf("failed to start CPU profile: %w", err)
			}
		}

		if args.GetMemProfile() != "" {
			runtime.MemProfileRate = args.GetMemProfileRate()

			allocsProfile = pprof.Lookup("allocs")
		}

		cfg, err := loadConfig(cc, args)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfigFailed, err)
		}

		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		args.config = cfg

		slog.Debug("ready to go",
			slog.String("root", cfg.Root),
			slog.String("output", cfg.Output),
		)

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		if args.GetCPUProfile() != "" {
			pprof.StopCPUProfile()
		}

		if allocsProfile != nil {
			f, err := os.Create(args.GetMemProfile())
			if err != nil {
				return fmt.Errorf("failed to create memory profile: %w", err)
			}

			runtime.GC() //nolint:revive // Get up-to-date statistics for the profile.

			err = allocsProfile.WriteTo(f, 0)
			if err != nil {
				return fmt.Errorf("failed to write memory profile: %w", err)
			}

			must(f.Close())
		}

		return nil
	}

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewResolveCmd(args))
	cmd.AddCommand(NewUnresolvedCmd(args))
	cmd.AddCommand(NewModuleIDCmd(args))
	cmd.AddCommand(NewDisplayCmd(args))
	cmd.AddCommand(NewImportCmd(args))
	cmd.AddCommand(NewURLCmd(args))
	cmd.AddCommand(NewSchemaCmd(args))

	return cmd
}

// loadConfig merges settings with precedence flag > env > file > defaults.
func loadConfig(cc *cobra.Command, args *RootArgs) (*config.Config, error) {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		return nil, err
	}

	path, required := args.GetConfigFile(), true
	if path == "" {
		path, required = config.DefaultFile, false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(os.LookupEnv)

	flags := cc.Flags()
	if flags.Changed("root") {
		cfg.Root = args.GetRoot()
	}

	if flags.Changed("log_level") {
		cfg.LogLevel = args.GetLogLevel()
	}

	if flags.Changed("log_format") {
		cfg.LogFormat = args.GetLogFormat()
	}

	if flags.Changed("output") {
		cfg.Output = args.GetOutput()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newResolver returns a [pagepath.Resolver] for the configured root, or for
// the root discovered from the working directory.
func newResolver(args *RootArgs) (*pagepath.Resolver, error) {
	root := args.Config().Root

	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRootFailed, err)
		}

		root, err = paths.DiscoverRoot(wd)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRootFailed, err)
		}
	} else if !pagepath.IsFilesystemAbsolute(pagepath.ToPosixPath(root)) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRootFailed, err)
		}

		root = abs
	}

	r, err := pagepath.NewResolver(pagepath.ToPosixPath(root))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootFailed, err)
	}

	slog.Debug("using root", slog.String("root", r.Root()))

	return r, nil
}

func newRenderer(cc *cobra.Command, args *RootArgs) (*render.Renderer, error) {
	format, err := render.ParseFormat(args.Config().Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return render.New(cc.OutOrStdout(), format), nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
