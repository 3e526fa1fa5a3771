package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel          = "gemini-2.5-flash"
	DefaultImageModel     = "imagen-4.0-generate-001"
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultRetryAttempts  = 3
	DefaultRetryBase      = 2 * time.Second
	DefaultLinkTimeout    = 5 * time.Second
	DefaultLinkProxyBase  = "https://corsproxy.io/?"
	DefaultRegion         = "United States"
	DefaultLanguage       = "English"
	DefaultRateLimit      = 10 * time.Second
	DefaultLocalFile      = "output/article.md"
	DefaultLocalImageDir  = "output/images"
	DefaultHistoryFile    = "output/history.json"
	DefaultAnalysisFile   = "output/analysis.json"
	DefaultComponentsFile = "output/components.json"
	DefaultArticleFile    = "output/article.json"
	DefaultAssetsFile     = "output/assets.json"
	DefaultYouTubeFile    = "output/youtube_script.md"
	DefaultReelsFile      = "output/reels_script.md"
	DefaultKeywordStyle   = "General & Related"
)

// Config はアプリケーション全体の環境設定（APIキーやクラウド設定）を保持する構造体なのだ。
type Config struct {
	ProjectID    string
	LocationID   string
	GeminiAPIKey string
	GeminiModel  string
	ImageModel   string
	KeyEndpoint  string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		ProjectID:    envutil.GetEnv("PROJECT_ID", ""),
		LocationID:   envutil.GetEnv("REGION", ""),
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		ImageModel:   envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		// 鍵取得エンドポイントは絶対URLで明示された場合のみ使うのだ
		KeyEndpoint: envutil.GetEnv("GEMINI_KEY_ENDPOINT", ""),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	Keyword        string   // --keyword: ターゲットキーワード
	CompetitorURLs []string // --competitor-url: 競合記事のURL（複数指定可）
	Region         string   // --region
	Language       string   // --language
	InputFile      string   // --input-file: 保存済みコンポーネントのJSONパス
	OutputFile     string   // --output-file
	OutputImageDir string   // --output-image-dir
	HistoryFile    string   // --history-file

	// AI挙動設定
	AIModel          string // --model: テキスト生成用のGeminiモデル
	ImageModel       string // --image-model: 画像生成用のGeminiモデル
	KeywordStyle     string // --keyword-style: Pinterestキーワードの生成スタイル
	InspirationImage string // --inspiration-image: ピン生成の参考画像パス

	// 記事改訂関連
	Revise   bool   // --auto-revise: 競合比較のフィードバックで1回改訂する
	Feedback string // --feedback: 手動で与える改善フィードバック

	// 実行制御
	HTTPTimeout   time.Duration // --http-timeout
	RetryAttempts int           // --retry-attempts
	RateLimit     time.Duration // --rate-limit: 画像生成の呼び出し間隔
}
