package cmd

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/director"
	"github.com/they4kman/tinysweep/director/constraint"
	"github.com/they4kman/tinysweep/director/random"
	"github.com/they4kman/tinysweep/game"
	"github.com/they4kman/tinysweep/host"
	"github.com/they4kman/tinysweep/host/ebitenhost"
	"github.com/they4kman/tinysweep/host/pixelhost"
	"github.com/they4kman/tinysweep/record"
	"github.com/they4kman/tinysweep/state"
	"math/rand"
	"os"
	"time"
)

var (
	log = logrus.New()

	configPath string
	debug      bool
	logFile    string

	// Receives flag values; only flags set explicitly override the config
	flagConfig = game.NewConfig()
)

var rootCmd = &cobra.Command{
	Use:   "tinysweep",
	Short: "Play Minesweeper on a tiny four-colour console",
	Long: `tinysweep is a Minesweeper game for a 160x160 four-colour screen,
played with the mouse, or by the computer.

Run with no arguments to play manually
	tinysweep

Use the director flag to make the computer play for you
	tinysweep --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}

		config, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		disk := newDisk(config)
		ctx := state.NewContext(config, disk, log)
		ctx.Recorder = newRecorder(config)
		session := host.NewSession(ctx, newDriver(config))

		log.WithFields(logrus.Fields{
			"backend":  config.Backend,
			"director": config.Director,
			"size":     fmt.Sprintf("%dx%d", config.Width, config.Height),
		}).Info("Starting")

		switch config.Backend {
		case "ebiten":
			err = ebitenhost.Run(session, config.Scale)
		default:
			err = pixelhost.Run(session, config.Scale)
		}

		if fileDisk, ok := disk.(*console.FileDisk); ok && fileDisk.Err != nil {
			log.WithError(fileDisk.Err).Warn("Disk access failed")
		}
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() error {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      log.GetLevel(),
			Formatter:  &logrus.TextFormatter{DisableColors: true},
		})
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		log.AddHook(hook)
	}
	return nil
}

// loadConfig reads the config file, if any, and applies the flags that were
// set on the command line
func loadConfig(flags *pflag.FlagSet) (game.Config, error) {
	config := game.NewConfig()
	if configPath != "" {
		var err error
		if config, err = game.LoadConfig(configPath); err != nil {
			return config, err
		}
	}

	overrides := []struct {
		flag  string
		apply func()
	}{
		{"width", func() { config.Width = flagConfig.Width }},
		{"height", func() { config.Height = flagConfig.Height }},
		{"seed", func() { config.Seed = flagConfig.Seed }},
		{"flag-mode", func() { config.FlagMode = flagConfig.FlagMode }},
		{"director", func() { config.Director = flagConfig.Director }},
		{"director-every", func() { config.DirectorEvery = flagConfig.DirectorEvery }},
		{"disk", func() { config.DiskPath = flagConfig.DiskPath }},
		{"snapshots", func() { config.SavedSnapshotsDir = flagConfig.SavedSnapshotsDir }},
		{"clipboard", func() { config.Clipboard = flagConfig.Clipboard }},
		{"scale", func() { config.Scale = flagConfig.Scale }},
		{"backend", func() { config.Backend = flagConfig.Backend }},
	}
	for _, override := range overrides {
		if flags.Changed(override.flag) {
			override.apply()
		}
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "invalid configuration")
	}
	return config, nil
}

func newDisk(config game.Config) console.Disk {
	if config.DiskPath == "" {
		return console.NewMemDisk()
	}
	return console.NewFileDisk(config.DiskPath)
}

func newRecorder(config game.Config) state.Recorder {
	var recorders record.Multi
	if config.SavedSnapshotsDir != "" {
		recorders = append(recorders, record.NewDir(config.SavedSnapshotsDir))
	}
	if config.Clipboard {
		recorders = append(recorders, &record.Clipboard{})
	}
	if len(recorders) == 0 {
		return nil
	}
	return recorders
}

func newDriver(config game.Config) *director.Driver {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var d game.Director
	switch config.Director {
	case "random":
		d = random.New(rng)
	case "constraint":
		d = constraint.New(rng)
	default:
		return nil
	}
	return director.NewDriver(d, config.DirectorEvery, log)
}

type flagModeValue game.FlagMode

func newFlagModeValue(val game.FlagMode, p *game.FlagMode) *flagModeValue {
	*p = val
	return (*flagModeValue)(p)
}

func (modeVal *flagModeValue) String() string {
	return string(*modeVal)
}

func (modeVal *flagModeValue) Set(value string) error {
	switch mode := game.FlagMode(value); mode {
	case game.FlagToggle, game.FlagOnly:
		*modeVal = flagModeValue(mode)
		return nil
	default:
		return fmt.Errorf("invalid flag mode")
	}
}

func (modeVal *flagModeValue) Type() string {
	return "game.FlagMode"
}

// choiceValue is a string flag restricted to a fixed set of names
type choiceValue struct {
	value   *string
	choices []string
}

func newChoiceValue(val string, p *string, choices []string) *choiceValue {
	*p = val
	return &choiceValue{value: p, choices: choices}
}

func (choiceVal *choiceValue) String() string {
	return *choiceVal.value
}

func (choiceVal *choiceValue) Set(value string) error {
	for _, choice := range choiceVal.choices {
		if choice == value {
			*choiceVal.value = value
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", choiceVal.choices)
}

func (choiceVal *choiceValue) Type() string {
	return "string"
}

func init() {
	defaults := game.NewConfig()

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file to read settings from")
	rootCmd.Flags().IntVarP(&flagConfig.Width, "width", "w", defaults.Width, "Width of the minefield, in tiles")
	rootCmd.Flags().IntVarP(&flagConfig.Height, "height", "h", defaults.Height, "Height of the minefield, in tiles")
	rootCmd.Flags().Int64Var(&flagConfig.Seed, "seed", 0, "Seed for the first game's mines (0 picks one)")
	rootCmd.Flags().Var(newFlagModeValue(defaults.FlagMode, &flagConfig.FlagMode), "flag-mode", `What right click does to a tile.
toggle: flags covered tiles and unflags flagged ones
flag: only ever flags`)
	rootCmd.Flags().VarP(newChoiceValue(defaults.Director, &flagConfig.Director, game.DirectorNames), "director", "d", `Make the computer play.
random: clicks covered tiles at random
constraint: reasons about the numbers, guessing only when stuck`)
	rootCmd.Flags().IntVar(&flagConfig.DirectorEvery, "director-every", defaults.DirectorEvery, "Frames between two moves of the director")
	rootCmd.Flags().StringVar(&flagConfig.DiskPath, "disk", "", "File keeping high scores (default in memory)")
	rootCmd.Flags().StringVar(&flagConfig.SavedSnapshotsDir, "snapshots", "", "Directory to save finished boards to")
	rootCmd.Flags().BoolVar(&flagConfig.Clipboard, "clipboard", false, "Copy finished boards to the clipboard")
	rootCmd.Flags().IntVar(&flagConfig.Scale, "scale", defaults.Scale, "Window pixels per console pixel")
	rootCmd.Flags().Var(newChoiceValue(defaults.Backend, &flagConfig.Backend, game.BackendNames), "backend", "Window back-end (pixel or ebiten)")

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log state changes and director moves")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also log to this file, rotating it as it grows")
}
