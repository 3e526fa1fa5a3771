package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// analyzeCmd は、競合記事の収集から分析・戦略立案・レシピ抽出までを実行するのだ。
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "競合記事を分析して上位表示戦略を立てるのだ。",
	Long: `競合URL（または入力ファイル）のコンテンツを収集し、競合分析、
上位表示戦略、レシピ構成要素の抽出までをまとめて実行するのだ。
結果はJSONで保存され、後続の components コマンドの入力になるのだよ。`,
	RunE: analyzeCommand,
}

func analyzeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Keyword == "" {
		return fmt.Errorf("ターゲットキーワード（--keyword）を指定してほしいのだ")
	}
	if len(opts.CompetitorURLs) == 0 && opts.InputFile == "" {
		return fmt.Errorf("競合ソース（--competitor-url または --input-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("競合分析パイプラインを起動するのだ！",
		"keyword", opts.Keyword,
		"region", opts.Region,
		"language", opts.Language,
		"urls", len(opts.CompetitorURLs))

	if err := pipeline.ExecuteAnalyze(ctx, cfg); err != nil {
		return fmt.Errorf("競合分析中にエラーが発生したのだ: %w", err)
	}

	return nil
}
