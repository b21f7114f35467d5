package cmd

import (
	"bytes"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
	"github.com/they4kman/tinysweep/record"
	"os"
	"path/filepath"
	"testing"
)

// parseFlags resets the package flag state and parses args with the root
// command's flags
func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	flagConfig = game.NewConfig()
	configPath = ""
	t.Cleanup(func() {
		flagConfig = game.NewConfig()
		configPath = ""
	})

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.AddFlagSet(rootCmd.Flags())
	flags.VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		require.NoError(t, f.Value.Set(f.DefValue))
	})
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	flags := parseFlags(t)

	config, err := loadConfig(flags)

	require.NoError(t, err)
	assert.Equal(t, game.NewConfig(), config)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tinysweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 8\nheight: 8\nscale: 2\n"), 0644))

	flags := parseFlags(t, "--config", path, "-h", "10", "--flag-mode", "flag", "--director", "random")
	config, err := loadConfig(flags)

	require.NoError(t, err)
	assert.Equal(t, 8, config.Width)
	assert.Equal(t, 10, config.Height)
	assert.Equal(t, 2, config.Scale)
	assert.Equal(t, game.FlagOnly, config.FlagMode)
	assert.Equal(t, "random", config.Director)
}

func TestInvalidChoicesAreRejected(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.AddFlagSet(rootCmd.Flags())

	assert.Error(t, flags.Parse([]string{"--backend", "sdl"}))
	assert.Error(t, flags.Parse([]string{"--flag-mode", "sometimes"}))
}

func TestLoadConfigValidates(t *testing.T) {
	flags := parseFlags(t, "--width", "17")

	_, err := loadConfig(flags)

	assert.Error(t, err)
}

func TestNewDisk(t *testing.T) {
	config := game.NewConfig()
	assert.IsType(t, &console.MemDisk{}, newDisk(config))

	config.DiskPath = filepath.Join(t.TempDir(), "disk")
	assert.IsType(t, &console.FileDisk{}, newDisk(config))
}

func TestNewRecorder(t *testing.T) {
	config := game.NewConfig()
	assert.Nil(t, newRecorder(config))

	config.SavedSnapshotsDir = t.TempDir()
	config.Clipboard = true
	recorders, ok := newRecorder(config).(record.Multi)
	require.True(t, ok)
	require.Len(t, recorders, 2)
	assert.IsType(t, &record.Dir{}, recorders[0])
	assert.IsType(t, &record.Clipboard{}, recorders[1])
}

func TestNewDriver(t *testing.T) {
	config := game.NewConfig()
	assert.Nil(t, newDriver(config))

	for _, name := range []string{"random", "constraint"} {
		config.Director = name
		assert.NotNil(t, newDriver(config), name)
	}
}

func TestPrintSnapshot(t *testing.T) {
	snapshot := &game.Snapshot{Seed: 7, Difficulty: game.Medium, Seconds: 42, Board: "F..\n...\n..#"}
	var out bytes.Buffer

	require.NoError(t, printSnapshot(&out, snapshot))

	assert.Equal(t, "Difficulty: Medium\n"+
		"Seed:       7\n"+
		"Time:       42s\n"+
		"Outcome:    other\n\n"+
		"F1.\n11.\n..#\n", out.String())
}
