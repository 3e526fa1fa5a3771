package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-recipe-seo-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全サブコマンド共通の実行オプションなのだ。
// フラグ解析で埋めて、各コマンドが cfg.Options に詰め替えて使うのだよ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ターゲット設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Keyword, "keyword", "k", "", "記事のターゲットキーワードなのだ。")
	rootCmd.PersistentFlags().StringArrayVarP(&opts.CompetitorURLs, "competitor-url", "u", nil, "競合記事のURL（複数指定できるのだ）。")
	rootCmd.PersistentFlags().StringVar(&opts.Region, "region", config.DefaultRegion, "ターゲット地域なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Language, "language", config.DefaultLanguage, "記事の言語なのだ。")

	// --- 入出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.InputFile, "input-file", "f", "", "入力ファイルのパス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", "", "保存パス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputImageDir, "output-image-dir", "i", config.DefaultLocalImageDir, "生成された画像を保存するディレクトリ（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.HistoryFile, "history-file", config.DefaultHistoryFile, "記事履歴の保存先なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "使用する画像生成モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
	rootCmd.PersistentFlags().IntVar(&opts.RetryAttempts, "retry-attempts", config.DefaultRetryAttempts, "API呼び出しの最大リトライ回数なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.RateLimit, "rate-limit", config.DefaultRateLimit, "画像生成リクエストの発行間隔なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// history サブコマンドはAIを呼ばないので、キーのチェックは不要なのだ。
	if cmd.Parent() != nil && cmd.Parent().Name() == "history" {
		return nil
	}

	// APIキーはフォールバックのキー配布エンドポイントでも賄えるので、
	// どちらも無いときだけ弾くのだ。
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GEMINI_KEY_ENDPOINT") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY か GEMINI_KEY_ENDPOINT のどちらかが必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"recipe-seo-kit",
		addAppFlags,
		preRunAppE,
		analyzeCmd,
		componentsCmd,
		articleCmd,
		assetsCmd,
		socialCmd,
		imagesCmd,
		historyCmd,
	)
}

// loadConfig はフラグ解析済みの opts を環境設定に合成するのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	if opts.AIModel != "" {
		cfg.GeminiModel = opts.AIModel
	}
	if opts.ImageModel != "" {
		cfg.ImageModel = opts.ImageModel
	}
	cfg.Options = opts
	return cfg
}
