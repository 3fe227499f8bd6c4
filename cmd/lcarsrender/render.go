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
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lcars/board"
	"seehuhn.de/go/lcars/canvas"
	"seehuhn.de/go/lcars/draw"
	"seehuhn.de/go/lcars/pdfcanvas"
	"seehuhn.de/go/lcars/scenes"
	"seehuhn.de/go/lcars/text"
)

func (c *cli) renderCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render BOARD.toml",
		Short: "Render a board file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.Load(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			return c.render(cmd.Context(), b, out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, .png or .pdf (default BOARD.png)")
	return cmd
}

func (c *cli) exampleCommand() *cobra.Command {
	var out, save string
	cmd := &cobra.Command{
		Use:   "example NAME",
		Short: "Render one of the built-in example boards",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return scenes.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok := scenes.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown example %q, see \"lcarsrender list\"", args[0])
			}
			if save != "" {
				if err := b.Save(save); err != nil {
					return err
				}
				c.logger.Info("saved board", "file", save)
			}
			if out == "" {
				out = args[0] + ".png"
			}
			return c.render(cmd.Context(), b, out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, .png or .pdf (default NAME.png)")
	cmd.Flags().StringVar(&save, "save", "", "also write the board to this TOML file")
	return cmd
}

func (c *cli) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in example boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range scenes.Names() {
				if _, err := fmt.Fprintln(w, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// fonts returns the font used for drawing text, and the measurer used for
// laying it out.
func (c *cli) fonts() (*text.Font, text.Measurer, error) {
	var data []byte
	font := text.Default()
	if c.cfg.Font != "" {
		var err error
		data, err = os.ReadFile(c.cfg.Font)
		if err != nil {
			return nil, nil, err
		}
		font, err = text.Parse(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", c.cfg.Font, err)
		}
	}
	if !c.cfg.Shaper {
		return font, font, nil
	}
	shaper, err := text.NewShaper(data)
	if err != nil {
		return nil, nil, err
	}
	return font, shaper, nil
}

// render lays out the board and writes it to fname.  The output format is
// chosen by the file name extension.
func (c *cli) render(ctx context.Context, b *board.Board, fname string) error {
	start := time.Now()

	font, m, err := c.fonts()
	if err != nil {
		return err
	}
	sc, err := b.Compile(m)
	if err != nil {
		return err
	}
	c.logger.Debug("compiled board", "title", b.Title, "widgets", sc.Len(), "font", font.Name())

	// Labels only settle on a font size after a few frames.
	discard := &draw.List{}
	for range c.cfg.Frames - 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		discard.Reset()
		sc.Render(discard)
	}

	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		cv := canvas.New(int(math.Ceil(b.Width)), int(math.Ceil(b.Height)))
		cv.Font = font
		sc.Render(cv)
		err = cv.SavePNG(fname)
	case ".pdf":
		var pc *pdfcanvas.Canvas
		pc, err = pdfcanvas.Create(fname, b.Width, b.Height)
		if err != nil {
			return err
		}
		pc.Font = font
		sc.Render(pc)
		err = pc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}

	c.logger.Infof("wrote %s (%s)", fname, time.Since(start).Round(time.Millisecond))
	return nil
}
