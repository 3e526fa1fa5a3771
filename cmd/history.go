package cmd

import (
	"fmt"

	"github.com/shouni/go-recipe-seo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// historyCmd は、生成済み記事の履歴を操作するのだ。
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "生成した記事の履歴を一覧・表示・削除するのだ。",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "履歴を新しい順に一覧表示するのだ。",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.ExecuteHistoryList(cmd.Context(), loadConfig())
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "指定IDの記事本文を表示するのだ。",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.ExecuteHistoryShow(cmd.Context(), loadConfig(), args[0])
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "指定IDの記事を履歴から削除するのだ。",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pipeline.ExecuteHistoryDelete(cmd.Context(), loadConfig(), args[0]); err != nil {
			return fmt.Errorf("履歴の削除に失敗したのだ: %w", err)
		}
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
}
