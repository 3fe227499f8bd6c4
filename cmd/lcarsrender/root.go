// seehuhn.de/go/lcars - LCARS-style widget geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/lcars/text"
)

const appName = "lcars"

// config holds the settings which apply to all commands.
type config struct {
	Verbose bool
	Frames  int
	Shaper  bool
	Font    string
}

// cli holds state shared between the commands.
type cli struct {
	v      *viper.Viper
	logger *log.Logger
	cfg    config
}

func newRootCommand(stderr io.Writer) *cobra.Command {
	c := &cli{
		v:      viper.New(),
		logger: newLogger(stderr, log.InfoLevel),
	}

	root := &cobra.Command{
		Use:          "lcarsrender",
		Short:        "Render LCARS widget boards",
		Long:         `lcarsrender lays out LCARS-style widget boards and writes them as PNG images or PDF files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			if c.cfg.Verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
			installLogger(c.logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "configuration file (default ~/.config/lcars/config.toml)")
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.Int("frames", 2*text.DefaultThreshold, "number of frames to lay out before output, so that label sizes settle")
	flags.Bool("shaper", false, "measure text with the HarfBuzz shaper")
	flags.String("font", "", "TrueType or OpenType font file (default Go Regular)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.listCommand())

	return root
}

// loadConfig merges the configuration file, the environment and the
// command line flags.  Flags take precedence over environment variables,
// which take precedence over the file.
func (c *cli) loadConfig(cmd *cobra.Command) error {
	v := c.v
	v.SetConfigType("toml")

	explicit, _ := cmd.Flags().GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appName))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		c.logger.Debug("loaded config", "file", v.ConfigFileUsed())
	}

	c.cfg = config{
		Verbose: v.GetBool("verbose"),
		Frames:  v.GetInt("frames"),
		Shaper:  v.GetBool("shaper"),
		Font:    v.GetString("font"),
	}
	if c.cfg.Frames < 1 {
		return fmt.Errorf("invalid number of frames %d", c.cfg.Frames)
	}
	return nil
}
