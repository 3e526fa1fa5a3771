package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// articleCmd は、コンポーネント一式からSEO記事を生成・公開するのだ。
var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "記事本文を生成してMarkdown/HTMLで保存するのだ。",
	Long: `components コマンドの結果を読み込み、記事本文を生成するのだ。
--feedback で指示した改善点、または --auto-revise による競合比較の指摘を
反映した改訂版の生成もここで行うのだよ。生成結果は履歴にも積まれるのだ。`,
	RunE: articleCommand,
}

func init() {
	articleCmd.Flags().StringVar(&opts.Feedback, "feedback", "", "記事の改訂に反映するフィードバックなのだ。")
	articleCmd.Flags().BoolVar(&opts.Revise, "auto-revise", false, "競合比較の結果を使って自動で改訂するのだ。")
}

func articleCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("記事生成パイプラインを起動するのだ！",
		"model", cfg.GeminiModel,
		"auto_revise", opts.Revise,
		"has_feedback", opts.Feedback != "")

	if err := pipeline.ExecuteArticle(ctx, cfg); err != nil {
		return fmt.Errorf("記事生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
