package commands

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-emotilog/internal/core/constants"
	"github.com/penwyp/go-emotilog/internal/presentation/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type emotionRow struct {
	Key     string `json:"key"`
	Glyph   string `json:"glyph"`
	Emotion string `json:"emotion"`
}

func newEmotionsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "emotions",
		Short: "List the built-in emotions and their keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			emotions := constants.Emotions()

			if v.GetString("output") == formatter.FormatJSON {
				rows := make([]emotionRow, 0, len(emotions))
				for _, e := range emotions {
					rows = append(rows, emotionRow{Key: string(e.Key), Glyph: e.Glyph, Emotion: e.Label})
				}
				data, err := sonic.ConfigStd.MarshalIndent(rows, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			for _, e := range emotions {
				if _, err := fmt.Fprintf(out, "%c  %s  %s\n", e.Key, e.Glyph, e.Label); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
