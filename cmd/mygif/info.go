package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marethyu/mygif/gif"
)

func infoCommand() *cobra.Command {
	var versions []string

	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Print the block structure of a GIF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			params := gif.NewParameters().WithVersions(versions...)
			g, err := gif.DecodeWithParameters(data, params)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			log.Info().
				Int("width", g.Width).
				Int("height", g.Height).
				Int("blocks", len(g.Blocks)).
				Int("frames", len(g.Images())).
				Int("loop_count", g.LoopCount).
				Bool("global_color_table", g.GlobalColorTable != nil).
				Msg("decoded")

			for i, block := range g.Blocks {
				switch b := block.(type) {
				case *gif.Image:
					log.Info().
						Int("block", i).
						Int("left", b.Left).Int("top", b.Top).
						Int("width", b.Width).Int("height", b.Height).
						Bool("interlace", b.Interlace).
						Int("colors", len(b.ColorTable)).
						Msg("image")
				case *gif.GraphicControl:
					log.Info().
						Int("block", i).
						Uint8("disposal", b.Disposal).
						Bool("transparent", b.Transparent).
						Int("delay_ms", b.Delay*10).
						Msg("graphic control")
				case *gif.ApplicationExtension:
					log.Info().
						Int("block", i).
						Str("id", string(b.ID[:])).
						Str("auth", string(b.Auth[:])).
						Int("sub_blocks", len(b.Data)).
						Msg("application extension")
				case *gif.Comment:
					log.Info().
						Int("block", i).
						Strs("texts", b.Texts).
						Msg("comment")
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&versions, "versions", gif.DefaultVersions, "accepted GIF versions")
	return cmd
}
