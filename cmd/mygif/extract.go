package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/marethyu/mygif/codec"
	_ "github.com/marethyu/mygif/gif"
)

func extractCommand() *cobra.Command {
	var outDir string
	var scale int

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Decode every frame of a GIF to PNG files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			c, err := codec.Get("image/gif")
			if err != nil {
				return err
			}
			res, err := c.Decode(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			if outDir == "" {
				outDir = base
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			for i, frame := range res.Frames {
				img := frame.Image()
				if scale > 1 {
					img = resize(img, scale)
				}
				name := filepath.Join(outDir, fmt.Sprintf("%s-%d.png", base, i+1))
				if err := writePNG(name, img); err != nil {
					return err
				}
				log.Debug().
					Str("file", name).
					Int("duration_ms", frame.Duration).
					Msg("wrote frame")
			}

			log.Info().
				Int("frames", len(res.Frames)).
				Str("dir", outDir).
				Msg("extracted")
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: file name without extension)")
	cmd.Flags().IntVar(&scale, "scale", 1, "integer upscale factor for the written PNGs")
	return cmd
}

func resize(src *image.RGBA, factor int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
