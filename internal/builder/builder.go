package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/go-recipe-seo-kit/internal/config"
	"github.com/shouni/go-recipe-seo-kit/internal/history"
	"github.com/shouni/go-recipe-seo-kit/internal/runner"
	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
	"github.com/shouni/go-recipe-seo-kit/pkg/generator"
	"github.com/shouni/go-recipe-seo-kit/pkg/linkcheck"
	"github.com/shouni/go-recipe-seo-kit/pkg/prompts"
	"github.com/shouni/go-recipe-seo-kit/pkg/scrape"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-web-exact/v2/extract"
)

// InitializeAIClient は認証情報を解決して gemini クライアントを初期化します。
// キーは環境変数または鍵取得エンドポイントから解決され、どちらも無い場合は
// ConfigurationError になります。
func InitializeAIClient(ctx context.Context, cfg *config.Config, httpClient httpkit.HTTPClient) (gemini.GenerativeClient, error) {
	resolver := gemini.NewKeyResolver(httpClient, cfg.KeyEndpoint)
	apiKey, err := resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	retryCfg := gemini.RetryConfig{BaseDelay: config.DefaultRetryBase}
	if cfg.Options.RetryAttempts > 0 {
		retryCfg.Attempts = cfg.Options.RetryAttempts
	}

	aiClient, err := gemini.NewClient(ctx, gemini.Config{
		APIKey: apiKey,
		Retry:  retryCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// InitializeGenerator はプロンプトビルダーとリンク検証器を組み立てて
// ステージ関数群を初期化します。
func InitializeGenerator(aiClient gemini.GenerativeClient, httpClient httpkit.HTTPClient, model string) (*generator.Generator, error) {
	promptBuilder, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}

	verifier := linkcheck.NewVerifier(httpClient, config.DefaultLinkProxyBase, config.DefaultLinkTimeout)
	return generator.New(aiClient, promptBuilder, verifier, model), nil
}

// BuildAnalyzeRunner は分析ワークフローの Runner を構築します。
func BuildAnalyzeRunner(appCtx *AppContext) (*runner.AnalyzeRunner, error) {
	extractor, err := extract.NewExtractor(appCtx.httpClient)
	if err != nil {
		return nil, fmt.Errorf("エクストラクターの初期化に失敗したのだ: %w", err)
	}

	collector := scrape.NewCollector(extractor)
	return runner.NewAnalyzeRunner(*appCtx.Config, collector, appCtx.Generator, appCtx.Reader), nil
}

// BuildComponentsRunner は記事コンポーネント生成の Runner を構築します。
func BuildComponentsRunner(appCtx *AppContext) *runner.ComponentsRunner {
	return runner.NewComponentsRunner(appCtx.Generator)
}

// BuildArticleRunner は記事生成・改訂の Runner を構築します。
func BuildArticleRunner(appCtx *AppContext) *runner.ArticleRunner {
	return runner.NewArticleRunner(appCtx.Generator)
}

// BuildAssetRunner は画像メタデータとPinterest素材の Runner を構築します。
func BuildAssetRunner(appCtx *AppContext) *runner.AssetRunner {
	style := appCtx.Options.KeywordStyle
	if style == "" {
		style = config.DefaultKeywordStyle
	}
	return runner.NewAssetRunner(appCtx.Generator, style)
}

// BuildSocialRunner は動画台本生成の Runner を構築します。
func BuildSocialRunner(appCtx *AppContext) *runner.SocialRunner {
	return runner.NewSocialRunner(appCtx.Generator)
}

// BuildImageRunner は画像レンダリングの Runner を構築します。
func BuildImageRunner(appCtx *AppContext) *runner.ImageRunner {
	model := appCtx.Options.ImageModel
	if model == "" {
		model = appCtx.Config.ImageModel
	}
	interval := appCtx.Options.RateLimit
	if interval <= 0 {
		interval = config.DefaultRateLimit
	}
	return runner.NewImageRunner(appCtx.aiClient, model, interval)
}

// BuildPublishRunner はコンテンツ保存と変換を行う Runner を構築します。
func BuildPublishRunner(appCtx *AppContext) *runner.PublishRunner {
	return runner.NewPublishRunner(appCtx.Options, appCtx.Writer)
}

// BuildHistoryStore は記事履歴の永続化ストアを構築します。
func BuildHistoryStore(appCtx *AppContext) *history.Store {
	path := appCtx.Options.HistoryFile
	if path == "" {
		path = config.DefaultHistoryFile
	}
	return history.NewStore(appCtx.Reader, appCtx.Writer, path)
}

// HTTPTimeout は実行時オプションを反映したHTTPタイムアウトを返します。
func HTTPTimeout(opts config.GenerateOptions) time.Duration {
	if opts.HTTPTimeout > 0 {
		return opts.HTTPTimeout
	}
	return config.DefaultHTTPTimeout
}
