package generator

import (
	"context"

	"google.golang.org/genai"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
	"github.com/shouni/go-recipe-seo-kit/pkg/prompts"
)

// CompetitorAnalysis は、競合コンテンツを分析してマークダウン形式の
// 分析レポートを返します。パイプラインの起点ステージです。
func (g *Generator) CompetitorAnalysis(ctx context.Context, keyword, region, language, competitorContent string) (string, error) {
	return g.generateText(ctx, prompts.ModeAnalysis, prompts.TemplateData{
		Keyword:           keyword,
		Region:            region,
		Language:          language,
		CompetitorContent: competitorContent,
	}, gemini.Request{})
}

// OutrankingStrategy は、分析結果から上位表示を狙うコンテンツ戦略を生成します。
func (g *Generator) OutrankingStrategy(ctx context.Context, analysis string) (string, error) {
	return g.generateText(ctx, prompts.ModeStrategy, prompts.TemplateData{
		Analysis: analysis,
	}, gemini.Request{})
}

// RelatedKeywords は、分析結果から関連キーワード・LSIタームの一覧を生成します。
func (g *Generator) RelatedKeywords(ctx context.Context, analysis string) (string, error) {
	return g.generateText(ctx, prompts.ModeRelatedKeywords, prompts.TemplateData{
		Analysis: analysis,
	}, gemini.Request{})
}

// FAQs は、指定言語で記事に含めるべきFAQを生成します。
func (g *Generator) FAQs(ctx context.Context, analysis, language string) (string, error) {
	return g.generateText(ctx, prompts.ModeFAQs, prompts.TemplateData{
		Analysis: analysis,
		Language: language,
	}, gemini.Request{})
}

// InternalLinks は、キーワードに基づく内部リンク候補を生成します。
func (g *Generator) InternalLinks(ctx context.Context, keyword string) (string, error) {
	return g.generateText(ctx, prompts.ModeInternalLinks, prompts.TemplateData{
		Keyword: keyword,
	}, gemini.Request{})
}

// FullArticle は、全コンポーネントを統合した完全な記事（区切りタグ付きの
// 単一テキスト）を生成します。
func (g *Generator) FullArticle(ctx context.Context, components domain.ArticleComponents) (string, error) {
	return g.generateText(ctx, prompts.ModeArticle, prompts.TemplateData{
		Components:       components,
		FallbackCategory: fallbackCategory(components.Category),
	}, gemini.Request{
		Temperature:     genai.Ptr(articleTemperature),
		MaxOutputTokens: articleMaxTokens,
	})
}

// RegenerateArticle は、改善フィードバックを反映した改訂版記事を生成します。
// 出力形式は FullArticle と同一です。
func (g *Generator) RegenerateArticle(ctx context.Context, components domain.ArticleComponents, originalArticle, feedback string) (string, error) {
	return g.generateText(ctx, prompts.ModeRevise, prompts.TemplateData{
		Components:       components,
		OriginalArticle:  originalArticle,
		Feedback:         feedback,
		FallbackCategory: fallbackCategory(components.Category),
	}, gemini.Request{
		Temperature:     genai.Ptr(reviseTemperature),
		MaxOutputTokens: articleMaxTokens,
	})
}

// CompareWithCompetitors は、生成済み記事を競合分析と突き合わせ、
// 強み・弱み・改善提案をまとめた批評レポートを返します。
func (g *Generator) CompareWithCompetitors(ctx context.Context, generatedArticle, analysis string) (string, error) {
	return g.generateText(ctx, prompts.ModeCompare, prompts.TemplateData{
		GeneratedArticle: generatedArticle,
		Analysis:         analysis,
	}, gemini.Request{})
}

// YouTubeScript は、記事を元にした5シーン構成の動画台本を生成します。
func (g *Generator) YouTubeScript(ctx context.Context, articleTitle, articleContent string) (string, error) {
	return g.generateText(ctx, prompts.ModeYouTube, prompts.TemplateData{
		ArticleTitle:   articleTitle,
		ArticleContent: articleContent,
	}, gemini.Request{
		Temperature:     genai.Ptr(scriptTemperature),
		MaxOutputTokens: scriptMaxTokens,
	})
}

// ReelsScript は、90秒の縦型ショート動画台本を生成します。
func (g *Generator) ReelsScript(ctx context.Context, articleTitle, ingredients, instructions string) (string, error) {
	return g.generateText(ctx, prompts.ModeReels, prompts.TemplateData{
		ArticleTitle: articleTitle,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, gemini.Request{
		Temperature:     genai.Ptr(reelsTemperature),
		MaxOutputTokens: scriptMaxTokens,
	})
}

// fallbackCategory はカテゴリ未指定時の既定値を補います。
func fallbackCategory(category string) string {
	if category == "" {
		return "Dinner"
	}
	return category
}
