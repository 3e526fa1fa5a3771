package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-utils/envutil"
	"golang.org/x/sync/singleflight"
)

const (
	credentialCacheKey = "gemini-api-key"
	credentialCacheTTL = 30 * time.Minute
)

// HTTPDoer は鍵取得エンドポイントへのGETに必要な最小のHTTPクライアント契約です。
// go-http-kit のクライアントがこれを満たします。
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// KeyResolver は Gemini API の認証情報を解決します。
// 環境変数 GEMINI_API_KEY を優先し、無ければ鍵取得エンドポイントへ
// 問い合わせます。取得結果はセッション内でキャッシュされ、並行呼び出しは
// singleflight で1回のフェッチにまとめられます。
type KeyResolver struct {
	httpClient HTTPDoer
	endpoint   string
	store      *cache.Cache
	group      singleflight.Group
}

// NewKeyResolver は KeyResolver を初期化します。endpoint が空の場合は
// 環境変数のみが解決ソースになります。
func NewKeyResolver(httpClient HTTPDoer, endpoint string) *KeyResolver {
	return &KeyResolver{
		httpClient: httpClient,
		endpoint:   endpoint,
		store:      cache.New(credentialCacheTTL, time.Hour),
	}
}

// Resolve は APIキーを返します。どのソースからも解決できない場合は
// ConfigurationError を返し、リトライ機構には乗せません。
func (r *KeyResolver) Resolve(ctx context.Context) (string, error) {
	if key := envutil.GetEnv("GEMINI_API_KEY", ""); key != "" {
		return key, nil
	}

	if cached, found := r.store.Get(credentialCacheKey); found {
		if key, ok := cached.(string); ok && key != "" {
			return key, nil
		}
	}

	if r.endpoint == "" || r.httpClient == nil {
		return "", &ConfigurationError{
			Reason: "APIキーが設定されていません。環境変数 GEMINI_API_KEY か鍵取得エンドポイントを設定してください",
		}
	}

	v, err, _ := r.group.Do(credentialCacheKey, func() (any, error) {
		return r.fetchKey(ctx)
	})
	if err != nil {
		return "", err
	}

	key := v.(string)
	r.store.Set(credentialCacheKey, key, cache.DefaultExpiration)
	return key, nil
}

func (r *KeyResolver) fetchKey(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return "", &ConfigurationError{Reason: fmt.Sprintf("鍵取得リクエストの構築に失敗しました: %v", err)}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", &ConfigurationError{Reason: fmt.Sprintf("鍵取得エンドポイントへの接続に失敗しました: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("鍵取得エンドポイントが異常ステータスを返しました", "status", resp.StatusCode)
		return "", &ConfigurationError{Reason: fmt.Sprintf("鍵取得エンドポイントがステータス %d を返しました", resp.StatusCode)}
	}

	var payload struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &ConfigurationError{Reason: fmt.Sprintf("鍵取得レスポンスの解析に失敗しました: %v", err)}
	}
	if payload.APIKey == "" {
		return "", &ConfigurationError{Reason: "鍵取得エンドポイントの応答にAPIキーが含まれていません"}
	}
	return payload.APIKey, nil
}
