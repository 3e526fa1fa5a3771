package runner

import (
	"context"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
)

// AnalysisStages は分析ワークフローが利用するステージ群の契約なのだ。
// 本実装は pkg/generator の Generator が満たす。テストではモックに差し替える。
type AnalysisStages interface {
	CompetitorAnalysis(ctx context.Context, keyword, region, language, competitorContent string) (string, error)
	OutrankingStrategy(ctx context.Context, analysis string) (string, error)
	RecipeSections(ctx context.Context, analysis, region, language string) (domain.RecipeSections, error)
}

// ComponentStages は記事コンポーネント生成ステージ群の契約なのだ。
type ComponentStages interface {
	RelatedKeywords(ctx context.Context, analysis string) (string, error)
	FAQs(ctx context.Context, analysis, language string) (string, error)
	InternalLinks(ctx context.Context, keyword string) (string, error)
	ExternalLinks(ctx context.Context, keyword, analysis, region, language string) (string, error)
}

// ArticleStages は記事生成・改訂ステージ群の契約なのだ。
type ArticleStages interface {
	FullArticle(ctx context.Context, components domain.ArticleComponents) (string, error)
	CompareWithCompetitors(ctx context.Context, generatedArticle, analysis string) (string, error)
	RegenerateArticle(ctx context.Context, components domain.ArticleComponents, originalArticle, feedback string) (string, error)
}

// AssetStages は画像メタデータとPinterest素材のステージ群の契約なのだ。
type AssetStages interface {
	ImageMetadata(ctx context.Context, keyword, ingredients, instructions string) (domain.AllImageDetails, error)
	PinterestContent(ctx context.Context, keyword, relatedKeywords, articleTitle string) (domain.AllPinterestContent, error)
	PinterestKeywords(ctx context.Context, keyword, keywordStyle string) ([]string, error)
	PinterestPins(ctx context.Context, keyword, relatedKeywords string, inspiration *gemini.InlineData) (domain.AllPinterestContent, error)
}

// SocialStages は動画台本ステージ群の契約なのだ。
type SocialStages interface {
	YouTubeScript(ctx context.Context, articleTitle, articleContent string) (string, error)
	ReelsScript(ctx context.Context, articleTitle, ingredients, instructions string) (string, error)
}

// ImageGenerator は画像レンダリングに使うAIクライアントの契約なのだ。
type ImageGenerator interface {
	GenerateImage(ctx context.Context, model, prompt, aspectRatio string) ([]byte, error)
}
