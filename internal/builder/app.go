package builder

import (
	"github.com/shouni/go-recipe-seo-kit/internal/config"
	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
	"github.com/shouni/go-recipe-seo-kit/pkg/generator"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config     *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、プロジェクトIDなど）。
	Options    config.GenerateOptions  // Optionsは、コマンドラインから渡された実行時の設定です（キーワード、URL、モデル名など）。
	Reader     remoteio.InputReader    // Readerは、競合コンテンツや保存済みデータの読み込みに使用する入力元です。
	Writer     remoteio.OutputWriter   // Writerは、生成された内容を保存するための出力先です。
	Generator  *generator.Generator    // Generatorは、記事制作パイプラインの全ステージを提供します。
	aiClient   gemini.GenerativeClient // aiClient はGeminiの通信に使う共通クライアント
	httpClient httpkit.HTTPClient // httpClient は外部APIとの通信に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	httpClient httpkit.HTTPClient,
	aiClient gemini.GenerativeClient,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	gen *generator.Generator,
) AppContext {
	return AppContext{
		Config:     cfg,
		Options:    cfg.Options,
		aiClient:   aiClient,
		httpClient: httpClient,
		Reader:     reader,
		Writer:     writer,
		Generator:  gen,
	}
}
