package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// socialCmd は、記事から動画プラットフォーム向けの台本を生成するのだ。
var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "YouTube台本とReels台本を生成するのだ。",
	Long: `article コマンドの成果物を読み込み、5シーン構成のYouTube台本と
90秒のReels台本をMarkdownで保存するのだ。`,
	RunE: socialCommand,
}

func socialCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("動画台本の生成を起動するのだ！", "model", cfg.GeminiModel)

	if err := pipeline.ExecuteSocial(ctx, cfg); err != nil {
		return fmt.Errorf("動画台本の生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
