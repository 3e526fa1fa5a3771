package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
)

// SocialResult は動画台本ワークフローの成果物なのだ。
type SocialResult struct {
	YouTubeScript string `json:"youtube_script"`
	ReelsScript   string `json:"reels_script"`
}

// SocialRunner は、完成した記事からYouTube台本とReels台本を生成する構造体なのだ。
type SocialRunner struct {
	stages SocialStages
}

// NewSocialRunner は SocialRunner の新しいインスタンスを生成して返すのだ。
func NewSocialRunner(stages SocialStages) *SocialRunner {
	return &SocialRunner{stages: stages}
}

// Run は両方の台本を逐次生成するのだ。
func (sr *SocialRunner) Run(ctx context.Context, article domain.ParsedArticle, components domain.ArticleComponents) (SocialResult, error) {
	var result SocialResult
	if !article.HasBody() {
		return result, fmt.Errorf("記事本文が空のため台本を生成できないのだ")
	}

	slog.Info("YouTube台本を生成中...", "title", article.Title)
	youtube, err := sr.stages.YouTubeScript(ctx, article.Title, article.Body)
	if err != nil {
		return result, fmt.Errorf("YouTube台本の生成に失敗したのだ: %w", err)
	}
	result.YouTubeScript = youtube

	slog.Info("Reels台本を生成中...")
	reels, err := sr.stages.ReelsScript(ctx, article.Title, components.Ingredients, components.Instructions)
	if err != nil {
		return result, fmt.Errorf("Reels台本の生成に失敗したのだ: %w", err)
	}
	result.ReelsScript = reels

	return result, nil
}
