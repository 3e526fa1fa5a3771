package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
)

// AssetResult はアセット生成ワークフローの成果物なのだ。
type AssetResult struct {
	Images            domain.AllImageDetails     `json:"images"`
	Pinterest         domain.AllPinterestContent `json:"pinterest"`
	PinterestKeywords []string                   `json:"pinterest_keywords,omitempty"`
}

// AssetRunner は、画像プロンプト/メタデータとPinterest素材を生成する構造体なのだ。
type AssetRunner struct {
	stages       AssetStages
	keywordStyle string
}

// NewAssetRunner は AssetRunner の新しいインスタンスを生成して返すのだ。
func NewAssetRunner(stages AssetStages, keywordStyle string) *AssetRunner {
	return &AssetRunner{stages: stages, keywordStyle: keywordStyle}
}

// Run はアセット一式を逐次生成するのだ。inspiration はピン生成に添付する
// 参考画像で、nil の場合はテキストのみで生成する。
func (ar *AssetRunner) Run(ctx context.Context, components domain.ArticleComponents, inspiration *gemini.InlineData) (AssetResult, error) {
	var result AssetResult

	slog.Info("画像プロンプトとメタデータを生成中...", "keyword", components.TargetKeyword)
	images, err := ar.stages.ImageMetadata(ctx, components.TargetKeyword, components.Ingredients, components.Instructions)
	if err != nil {
		return result, fmt.Errorf("画像メタデータの生成に失敗したのだ: %w", err)
	}
	result.Images = images

	slog.Info("Pinterestキーワードを生成中...", "style", ar.keywordStyle)
	keywords, err := ar.stages.PinterestKeywords(ctx, components.TargetKeyword, ar.keywordStyle)
	if err != nil {
		return result, fmt.Errorf("Pinterestキーワードの生成に失敗したのだ: %w", err)
	}
	result.PinterestKeywords = keywords

	slog.Info("Pinterestピン素材を生成中...", "with_inspiration", inspiration != nil)
	pins, err := ar.stages.PinterestPins(ctx, components.TargetKeyword, components.RelatedKeywords, inspiration)
	if err != nil {
		return result, fmt.Errorf("Pinterestピンの生成に失敗したのだ: %w", err)
	}
	result.Pinterest = pins

	return result, nil
}

// RunPinsForArticle は記事タイトルを起点にしたピン素材のみを生成するのだ。
func (ar *AssetRunner) RunPinsForArticle(ctx context.Context, components domain.ArticleComponents, articleTitle string) (domain.AllPinterestContent, error) {
	slog.Info("記事向けPinterest素材を生成中...", "title", articleTitle)
	content, err := ar.stages.PinterestContent(ctx, components.TargetKeyword, components.RelatedKeywords, articleTitle)
	if err != nil {
		return domain.AllPinterestContent{}, fmt.Errorf("Pinterest素材の生成に失敗したのだ: %w", err)
	}
	return content, nil
}
