package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// imagesCmd は、生成済みの画像プロンプト一式をレンダリングするのだ。
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "画像プロンプトから記事用画像をレンダリングするのだ。",
	Long: `assets コマンドの成果物を読み込み、アイキャッチ・材料・手順の各画像を
レート制限付きの並列リクエストでレンダリングして保存するのだ。`,
	RunE: imagesCommand,
}

func imagesCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("画像レンダリングを起動するのだ！",
		"image_model", cfg.ImageModel,
		"output_dir", opts.OutputImageDir,
		"interval", opts.RateLimit)

	if err := pipeline.ExecuteImages(ctx, cfg); err != nil {
		return fmt.Errorf("画像レンダリング中にエラーが発生したのだ: %w", err)
	}

	return nil
}
