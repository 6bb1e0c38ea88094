package commands

import (
	"fmt"
	"io"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/core/store"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
	"github.com/penwyp/go-emotilog/internal/presentation/formatter"
	"github.com/penwyp/go-emotilog/internal/presentation/interaction"
	"github.com/penwyp/go-emotilog/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLogCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "log EMOTION... | log -",
		Short: "Log emotions and print statistics",
		Long: `Logs each emotion in order, then prints the overall statistics, today's
summary and the frequency list in the selected output format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := logFromArgs(cmd, args)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), v.GetString("output"), s, v.GetInt("recent"))
		},
	}
}

func newSummaryCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "summary EMOTION... | summary -",
		Short: "Log emotions and print the text summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := logFromArgs(cmd, args)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), formatter.FormatSummary, s, v.GetInt("recent"))
		},
	}
}

func newLogsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs EMOTION... | logs -",
		Short: "Log emotions and list the entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := interaction.ParseSortField(v.GetString("sort"))
			if err != nil {
				return err
			}

			s, err := logFromArgs(cmd, args)
			if err != nil {
				return err
			}

			logs := selectLogs(s, v.GetString("emotion"), v.GetBool("today"))
			interaction.NewLogSorterFor(field).Sort(logs)

			f, err := formatter.New(v.GetString("output"))
			if err != nil {
				return err
			}
			return f.FormatLogs(cmd.OutOrStdout(), logs, s.Location())
		},
	}

	cmd.Flags().String("sort", "time",
		"Sort order (time = newest first, insertion, emotion)")
	cmd.Flags().String("emotion", "",
		"Only list entries with exactly this emotion")
	cmd.Flags().Bool("today", false,
		"Only list entries from today")
	return cmd
}

// logFromArgs records every emotion from the arguments into a fresh store
func logFromArgs(cmd *cobra.Command, args []string) (*store.Store, error) {
	emotions, err := readEmotions(args, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}

	s := newStore()
	for _, emotion := range emotions {
		s.AddLog(emotion)
	}
	util.LogInfo("Emotions logged", util.F("count", s.TotalLogCount()))
	return s, nil
}

// selectLogs applies the --emotion and --today filters, returning entries in insertion order
func selectLogs(s *store.Store, emotion string, today bool) []model.LogEntry {
	var logs []model.LogEntry
	switch {
	case today:
		logs = s.LogsForDay(s.Now())
	case emotion != "":
		logs = s.LogsForEmotion(emotion)
	default:
		return s.Logs()
	}

	if today && emotion != "" {
		filtered := logs[:0]
		for _, e := range logs {
			if e.Emotion == emotion {
				filtered = append(filtered, e)
			}
		}
		logs = filtered
	}
	return logs
}

func printReport(w io.Writer, format string, s *store.Store, recent int) error {
	f, err := formatter.New(format)
	if err != nil {
		return err
	}

	report := aggregator.NewWithRecent(s, recent).Today()
	if err := f.FormatReport(w, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
