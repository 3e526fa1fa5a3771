package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/internal/config"
	"github.com/shouni/go-recipe-seo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// assetsCmd は、画像プロンプトとPinterest素材を生成するのだ。
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "画像メタデータとPinterest素材を生成するのだ。",
	Long: `article コマンドの成果物を読み込み、画像の生成プロンプト・代替テキスト
などのメタデータと、Pinterestのピン文面・キーワード候補を生成するのだ。
--inspiration-image で参考画像を渡すと、ピンの視覚方針に反映されるのだよ。`,
	RunE: assetsCommand,
}

func init() {
	assetsCmd.Flags().StringVar(&opts.InspirationImage, "inspiration-image", "", "ピン生成の参考にする画像のパスなのだ。")
	assetsCmd.Flags().StringVar(&opts.KeywordStyle, "keyword-style", config.DefaultKeywordStyle, "Pinterestキーワードの方向性なのだ。")
}

func assetsCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("アセット生成を起動するのだ！",
		"model", cfg.GeminiModel,
		"keyword_style", opts.KeywordStyle,
		"has_inspiration", opts.InspirationImage != "")

	if err := pipeline.ExecuteAssets(ctx, cfg); err != nil {
		return fmt.Errorf("アセット生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
