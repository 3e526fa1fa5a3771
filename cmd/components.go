package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// componentsCmd は、分析結果から記事コンポーネント一式を生成するのだ。
var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "関連キーワード・FAQ・リンク群を生成するのだ。",
	Long: `analyze コマンドの結果を読み込み、関連キーワード、FAQ、内部リンク、
検証済み外部リンクを生成して記事コンポーネントとして保存するのだ。`,
	RunE: componentsCommand,
}

func componentsCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("コンポーネント生成を起動するのだ！", "model", cfg.GeminiModel)

	if err := pipeline.ExecuteComponents(ctx, cfg); err != nil {
		return fmt.Errorf("コンポーネント生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
