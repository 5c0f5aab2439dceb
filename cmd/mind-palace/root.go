package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/mind-palace/app"
	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/config"
	"github.com/lixenwraith/mind-palace/content"
	"github.com/lixenwraith/mind-palace/core"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/shell"
)

// options holds the command-line overrides; a flag applies only when set explicitly
type options struct {
	configPath string
	envFile    string
	debug      bool
	seed       uint64
	fps        int
	audio      bool
	skipIntro  bool
}

func newRootCommand() *cobra.Command {
	return rootCommand(&options{})
}

func rootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mind-palace",
		Short: "Galaxy brain portfolio for the terminal",
		Long: `An animated, navigable portfolio rendered with half-block pixels.

Rooms are reached from the neural pathways menu, with digits 1-6 while the
terminal is hidden, or with the faux shell. Esc toggles the terminal, F12 the
debug overlay, Ctrl+C quits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with MIND_PALACE_* overrides")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "write logs/mind-palace.log and show the debug overlay")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 seeds from the clock")
	flags.IntVar(&opts.fps, "fps", 60, "frame rate")
	flags.BoolVar(&opts.audio, "audio", false, "enable audio at startup")
	flags.BoolVar(&opts.skipIntro, "skip-intro", false, "skip the loading and boot sequences")

	cmd.AddCommand(newCommandsCommand())
	return cmd
}

// resolveConfig layers defaults, the config file, the environment and explicit flags
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = opts.fps
	}
	if flags.Changed("audio") {
		cfg.Audio.Enabled = opts.audio
	}
	if flags.Changed("skip-intro") {
		cfg.SkipIntro = opts.skipIntro
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadContent(cfg *config.Config) (*content.Content, error) {
	if cfg.ContentDir == "" {
		return content.Default(), nil
	}
	return content.Load(cfg.ContentDir)
}

func run(cfg *config.Config) error {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := app.NewSession(cfg, c, screen, audio.SpeakerOutput(), nil)
	defer session.Close()

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func newCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the faux terminal understands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCommands(cmd.OutOrStdout())
		},
	}
}

func listCommands(w io.Writer) error {
	sh := shell.New(navigation.NewTranscript(2), nil, nil)
	for _, c := range sh.Commands() {
		resp := c.Response
		if c.Clear {
			resp = "(clears the terminal)"
		}
		if _, err := fmt.Fprintf(w, "%-16s %s\n", c.Name, resp); err != nil {
			return err
		}
	}
	return nil
}
