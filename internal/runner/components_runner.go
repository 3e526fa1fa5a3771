package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
)

// ComponentsRunner は、分析結果から記事コンポーネント（関連キーワード、FAQ、
// 内部リンク、検証済み外部リンク）を組み立てる構造体なのだ。
type ComponentsRunner struct {
	stages ComponentStages
}

// NewComponentsRunner は ComponentsRunner の新しいインスタンスを生成して返すのだ。
func NewComponentsRunner(stages ComponentStages) *ComponentsRunner {
	return &ComponentsRunner{stages: stages}
}

// Run は分析結果を起点に各コンポーネントを逐次生成し、記事生成の入力となる
// ArticleComponents を返すのだ。途中で失敗した場合、そこまでに完了した
// フィールドは埋まったまま返される。
func (cr *ComponentsRunner) Run(ctx context.Context, analyzed AnalyzeResult) (domain.ArticleComponents, error) {
	components := domain.ArticleComponents{
		TargetKeyword:      analyzed.Keyword,
		CompetitorAnalysis: analyzed.Analysis,
		Ingredients:        strings.Join(analyzed.Sections.Ingredients, "\n"),
		Instructions:       strings.Join(analyzed.Sections.Instructions, "\n"),
		Nutrition:          analyzed.Sections.NutritionFacts,
		Category:           analyzed.Sections.Category,
	}
	if analyzed.Analysis == "" {
		return components, fmt.Errorf("分析結果が空なのだ。先に analyze を実行するのだ")
	}

	slog.Info("関連キーワードを生成中...")
	relatedKeywords, err := cr.stages.RelatedKeywords(ctx, analyzed.Analysis)
	if err != nil {
		return components, fmt.Errorf("関連キーワードの生成に失敗したのだ: %w", err)
	}
	components.RelatedKeywords = relatedKeywords

	slog.Info("FAQを生成中...")
	faqs, err := cr.stages.FAQs(ctx, analyzed.Analysis, analyzed.Language)
	if err != nil {
		return components, fmt.Errorf("FAQの生成に失敗したのだ: %w", err)
	}
	components.FAQs = faqs

	slog.Info("内部リンク候補を生成中...")
	internalLinks, err := cr.stages.InternalLinks(ctx, analyzed.Keyword)
	if err != nil {
		return components, fmt.Errorf("内部リンクの生成に失敗したのだ: %w", err)
	}
	components.InternalLinks = internalLinks

	slog.Info("外部リンクを生成・検証中...")
	externalLinks, err := cr.stages.ExternalLinks(ctx, analyzed.Keyword, analyzed.Analysis, analyzed.Region, analyzed.Language)
	if err != nil {
		return components, fmt.Errorf("外部リンクの生成に失敗したのだ: %w", err)
	}
	components.ExternalLinks = externalLinks

	return components, nil
}
