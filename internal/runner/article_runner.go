package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
	"github.com/shouni/go-recipe-seo-kit/pkg/parser"
)

// ArticleResult は記事生成ワークフローの成果物なのだ。改訂が走った場合は
// Parsed が最終版、Initial が初回版を保持する。
type ArticleResult struct {
	Raw      string               `json:"raw"`
	Parsed   domain.ParsedArticle `json:"parsed"`
	Feedback string               `json:"feedback,omitempty"`
	Revised  bool                 `json:"revised"`
}

// ArticleRunner は、コンポーネント一式から記事を生成し、必要に応じて
// 競合比較→改訂→再パースのループを回す構造体なのだ。
type ArticleRunner struct {
	stages ArticleStages
}

// NewArticleRunner は ArticleRunner の新しいインスタンスを生成して返すのだ。
func NewArticleRunner(stages ArticleStages) *ArticleRunner {
	return &ArticleRunner{stages: stages}
}

// Run は記事生成を実行するのだ。feedback を渡すとそれを使って1回改訂し、
// autoRevise 指定時は競合比較の結果をフィードバックとして自動改訂する。
func (ar *ArticleRunner) Run(ctx context.Context, components domain.ArticleComponents, feedback string, autoRevise bool) (ArticleResult, error) {
	slog.Info("記事を生成中...", "keyword", components.TargetKeyword)
	raw, err := ar.stages.FullArticle(ctx, components)
	if err != nil {
		return ArticleResult{}, fmt.Errorf("記事の生成に失敗したのだ: %w", err)
	}

	result := ArticleResult{
		Raw:    raw,
		Parsed: parser.ParseArticle(raw),
	}
	if !result.Parsed.HasBody() {
		// パース自体は常に成功するが、本文が取れない応答は使いものにならない。
		slog.Warn("応答から記事本文を抽出できなかったのだ", "raw_length", len(raw))
	}

	// 改訂が不要ならここで完了なのだ
	if feedback == "" && !autoRevise {
		return result, nil
	}

	if feedback == "" {
		slog.Info("競合と比較してフィードバックを生成中...")
		feedback, err = ar.stages.CompareWithCompetitors(ctx, raw, components.CompetitorAnalysis)
		if err != nil {
			return result, fmt.Errorf("競合比較に失敗したのだ: %w", err)
		}
	}
	result.Feedback = feedback

	slog.Info("フィードバックを反映して記事を改訂中...")
	revised, err := ar.stages.RegenerateArticle(ctx, components, raw, feedback)
	if err != nil {
		return result, fmt.Errorf("記事の改訂に失敗したのだ: %w", err)
	}

	result.Raw = revised
	result.Parsed = parser.ParseArticle(revised)
	result.Revised = true
	return result, nil
}
