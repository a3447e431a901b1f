package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ra8876kit/internal/mmfile"
	"github.com/joshuapare/ra8876kit/ra8876"
	"github.com/joshuapare/ra8876kit/ra8876/bitmap"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/draw"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
	"github.com/joshuapare/ra8876kit/ra8876/text"
)

var (
	demoOut    string
	demoWidth  int
	demoHeight int
	demoMode   string
	demoFlash  string
)

// flashPicture is the size of the picture the demo loads from --flash.
const flashPicture = 64

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a test scene on the simulator and dump the canvas",
		Long: `The demo command draws fills, blits, an alpha blend, a sprite, shapes and text
on a simulated controller and writes the raw canvas bytes to --out. The dump
is in the chosen color mode, row by row, with no header.

Example:
  ra8876ctl demo --out canvas.bin
  ra8876ctl demo --out canvas.bin --mode rgb888 --width 320 --height 240
  ra8876ctl demo --out canvas.bin --flash logo.bin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&demoOut, "out", "o", "canvas.bin", "Output file for the canvas dump")
	cmd.Flags().IntVar(&demoWidth, "width", 800, "Canvas width in pixels")
	cmd.Flags().IntVar(&demoHeight, "height", 600, "Canvas height in pixels")
	cmd.Flags().StringVar(&demoMode, "mode", "rgb565", "Canvas color mode")
	cmd.Flags().StringVar(&demoFlash, "flash", "", "Serial flash image; its first 64x64 picture is DMA-loaded into the scene")
	rootCmd.AddCommand(cmd)
}

type demoReport struct {
	Out    string `json:"out"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mode   string `json:"mode"`
	Bytes  int    `json:"bytes"`
	BTEOps int    `json:"bte_ops"`
	Draws  int    `json:"draw_ops"`
	Memory int    `json:"memory_used_percent"`
}

func runDemo(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	mode, err := parseMode(demoMode)
	if err != nil {
		return err
	}
	c := sim.New(nil)
	dev, err := ra8876.New(c, nil)
	if err != nil {
		return err
	}
	if err := dev.SetCanvas(canvas.Descriptor{Width: demoWidth, Height: demoHeight, Mode: mode}); err != nil {
		return err
	}
	if err := drawScene(ctx, dev); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if demoFlash != "" {
		if err := drawFlash(ctx, c, dev, demoFlash); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
	}

	n := demoWidth * demoHeight * mode.BytesPerPixel()
	base := dev.Canvas().Descriptor().Base
	if err := os.WriteFile(demoOut, c.Memory()[base:base+uint32(n)], 0o644); err != nil {
		return err
	}

	rep := demoReport{
		Out: demoOut, Width: demoWidth, Height: demoHeight, Mode: mode.String(),
		Bytes: n, BTEOps: c.BTEOps(), Draws: c.DrawOps(), Memory: dev.MemoryUsed(),
	}
	if jsonOut {
		return printJSON(rep)
	}
	printInfo("Wrote %d bytes (%dx%d %s) to %s\n", rep.Bytes, rep.Width, rep.Height, rep.Mode, rep.Out)
	printVerbose("  block transfers: %d, draws: %d, memory used: %d%%\n", rep.BTEOps, rep.Draws, rep.Memory)
	return nil
}

func drawScene(ctx context.Context, dev *ra8876.Device) error {
	if err := dev.Clear(ctx, canvas.Blue); err != nil {
		return err
	}
	screen := bitmap.Screen(dev)

	// 64x32 sheet: two 32x32 frames with a magenta surround
	sheet, err := bitmap.Create(dev, 64, 32)
	if err != nil {
		return err
	}
	defer sheet.Destroy()
	if err := sheet.ClearToColor(ctx, bitmap.MaskColor); err != nil {
		return err
	}
	if err := sheet.RectFill(ctx, 4, 4, 27, 27, canvas.Yellow); err != nil {
		return err
	}
	if err := sheet.RectFill(ctx, 36, 4, 59, 27, canvas.Green); err != nil {
		return err
	}
	if err := sheet.Rect(ctx, 0, 0, 63, 31, canvas.White); err != nil {
		return err
	}

	if err := bitmap.Blit(ctx, sheet, screen, 0, 0, 16, 16, 64, 32); err != nil {
		return err
	}
	if err := bitmap.MaskedBlit(ctx, sheet, screen, 0, 0, 96, 16, 64, 32); err != nil {
		return err
	}
	if err := screen.RectFill(ctx, 176, 16, 239, 47, canvas.Red); err != nil {
		return err
	}
	if err := bitmap.AlphaBlit(ctx, sheet, screen, 0, 0, 176, 16, 64, 32, 16); err != nil {
		return err
	}

	spr, err := bitmap.NewSprite(sheet, 32, 32)
	if err != nil {
		return err
	}
	defer spr.Destroy()
	if err := spr.SetFrame(1); err != nil {
		return err
	}
	if err := spr.Draw(ctx, screen, 256, 16); err != nil {
		return err
	}

	if err := drawShapes(ctx, dev); err != nil {
		return err
	}

	g := text.NewGlyphs(nil)
	if _, err := g.DrawString(ctx, dev.BTE(), dev.Screen().At(16, 64), "RA8876 demo", canvas.White, canvas.Black, false); err != nil {
		return err
	}
	if _, err := g.DrawString(ctx, dev.BTE(), dev.Screen().At(16, 80), "transparent", canvas.Yellow, canvas.Black, true); err != nil {
		return err
	}
	hw := text.HW{Foreground: canvas.White, Transparent: true}
	return hw.PutString(ctx, dev, 16, 100, 0, "CGROM text")
}

// drawShapes fills the row under the sprites with draw engine primitives.
func drawShapes(ctx context.Context, dev *ra8876.Device) error {
	d := dev.Draw()
	steps := []func() error{
		func() error { return d.Line(ctx, draw.Pt(16, 128), draw.Pt(111, 175), canvas.White) },
		func() error { return d.FillTriangle(ctx, draw.Pt(128, 175), draw.Pt(160, 128), draw.Pt(192, 175), canvas.Cyan) },
		func() error { return d.FillRoundRect(ctx, draw.Pt(208, 128), draw.Pt(271, 175), 8, 8, canvas.Magenta) },
		func() error { return d.FillCircle(ctx, draw.Pt(312, 152), 23, canvas.Yellow) },
		func() error { return d.Ellipse(ctx, draw.Pt(384, 152), 40, 20, canvas.White) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// drawFlash loads the image at path into the simulated serial flash and
// DMA-loads its first picture into the upper-right corner.
func drawFlash(ctx context.Context, c *sim.Controller, dev *ra8876.Device, path string) (err error) {
	img, release, err := mmfile.Map(path)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	need := flashPicture * flashPicture * dev.Canvas().Format().BytesPerPixel
	if len(img) < need {
		return fmt.Errorf("flash image %s holds %d bytes, need %d", path, len(img), need)
	}
	if err := c.LoadFlash(0, img); err != nil {
		return err
	}
	printVerbose("Loaded %d byte flash image from %s\n", len(img), path)

	pic, err := bitmap.LoadFlash(ctx, dev, flashPicture, flashPicture, 0)
	if err != nil {
		return err
	}
	defer pic.Destroy()
	x := demoWidth - flashPicture - 16
	return bitmap.Blit(ctx, pic, bitmap.Screen(dev), 0, 0, x, 16, flashPicture, flashPicture)
}
