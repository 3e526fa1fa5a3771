package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/go-recipe-seo-kit/internal/config"
	"github.com/shouni/go-recipe-seo-kit/pkg/domain"

	"github.com/shouni/go-remote-io/remoteio"
)

// ContentCollector は競合URL群から分析対象テキストを収集する契約なのだ。
type ContentCollector interface {
	Collect(ctx context.Context, urls []string) (string, error)
}

// AnalyzeResult は分析ワークフローの成果物なのだ。途中のステージで失敗しても、
// そこまでに完了したフィールドは保持されたまま返される。
type AnalyzeResult struct {
	Keyword           string                `json:"keyword"`
	Region            string                `json:"region"`
	Language          string                `json:"language"`
	CompetitorContent string                `json:"competitor_content"`
	Analysis          string                `json:"analysis"`
	Strategy          string                `json:"strategy"`
	Sections          domain.RecipeSections `json:"sections"`
}

// AnalyzeRunner は、競合コンテンツの収集から分析・戦略立案・レシピ抽出までの
// 3ステージを順番に実行する核となる構造体なのだ。
type AnalyzeRunner struct {
	cfg       config.Config        // 実行時のコマンドライン引数や設定
	collector ContentCollector     // 競合記事の本文を収集するコレクター
	stages    AnalysisStages       // 分析系のステージ関数
	reader    remoteio.InputReader // ローカルやGCSのファイルを読み込むリーダー
}

// NewAnalyzeRunner は AnalyzeRunner の新しいインスタンスを生成して返すのだ。
func NewAnalyzeRunner(cfg config.Config, collector ContentCollector, stages AnalysisStages, r remoteio.InputReader) *AnalyzeRunner {
	return &AnalyzeRunner{
		cfg:       cfg,
		collector: collector,
		stages:    stages,
		reader:    r,
	}
}

// Run は分析ワークフローを実行するのだ。各ステージは直前のステージの出力に
// 依存するため厳密に逐次実行で、失敗したステージ以降は起動されない。
func (ar *AnalyzeRunner) Run(ctx context.Context) (AnalyzeResult, error) {
	opts := ar.cfg.Options
	result := AnalyzeResult{
		Keyword:  opts.Keyword,
		Region:   opts.Region,
		Language: opts.Language,
	}

	// 1. 競合コンテンツの収集（URLスクレイピング または ファイル読み込み）
	content, err := ar.readCompetitorContent(ctx)
	if err != nil {
		return result, fmt.Errorf("競合コンテンツの取得に失敗したのだ: %w", err)
	}
	result.CompetitorContent = content

	// 2. 競合分析
	slog.Info("競合分析を開始するのだ...", "keyword", opts.Keyword)
	analysis, err := ar.stages.CompetitorAnalysis(ctx, opts.Keyword, opts.Region, opts.Language, content)
	if err != nil {
		return result, fmt.Errorf("競合分析に失敗したのだ: %w", err)
	}
	result.Analysis = analysis

	// 3. 上位表示戦略
	slog.Info("コンテンツ戦略を立案中...")
	strategy, err := ar.stages.OutrankingStrategy(ctx, analysis)
	if err != nil {
		return result, fmt.Errorf("戦略立案に失敗したのだ: %w", err)
	}
	result.Strategy = strategy

	// 4. レシピ構成要素の抽出
	slog.Info("レシピ構成要素を抽出中...")
	sections, err := ar.stages.RecipeSections(ctx, analysis, opts.Region, opts.Language)
	if err != nil {
		return result, fmt.Errorf("レシピ構成要素の抽出に失敗したのだ: %w", err)
	}
	result.Sections = sections

	return result, nil
}

// readCompetitorContent は、URL指定があればスクレイピング、なければ
// 入力ファイルから競合コンテンツを読み込むのだ。
func (ar *AnalyzeRunner) readCompetitorContent(ctx context.Context) (string, error) {
	opts := ar.cfg.Options
	if len(opts.CompetitorURLs) > 0 {
		return ar.collector.Collect(ctx, opts.CompetitorURLs)
	}
	if opts.InputFile == "" {
		return "", fmt.Errorf("--competitor-url または --input-file のいずれかを指定するのだ")
	}

	rc, err := ar.reader.Open(ctx, opts.InputFile)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("入力ファイル '%s' が空なのだ", opts.InputFile)
	}
	return text, nil
}
