package linkcheck

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// デフォルト設定値です。
const (
	DefaultProxyBase = "https://corsproxy.io/?"
	DefaultTimeout   = 5 * time.Second

	probeCacheTTL = 15 * time.Minute
)

// HTTPDoer はリンク存在確認に必要な最小のHTTPクライアント契約です。
// go-http-kit のクライアントがこれを満たします。
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Verifier は、URLの生存確認をCORSリレープロキシ経由のGETで行います。
// これはベストエフォートの確認です。プロキシ自体の障害でも false を返すため、
// false はリンクが無効であることの証明にはなりません。
type Verifier struct {
	client    HTTPDoer
	proxyBase string
	timeout   time.Duration
	probes    *cache.Cache
}

// NewVerifier は Verifier を初期化します。proxyBase が空の場合は
// デフォルトのリレーを、timeout が0以下の場合は5秒を使用します。
func NewVerifier(client HTTPDoer, proxyBase string, timeout time.Duration) *Verifier {
	if proxyBase == "" {
		proxyBase = DefaultProxyBase
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Verifier{
		client:    client,
		proxyBase: proxyBase,
		timeout:   timeout,
		probes:    cache.New(probeCacheTTL, time.Hour),
	}
}

// Verify は、URLが HTTP(S) スキームで始まり、制限時間内のGETが2xxで
// 完了した場合にのみ true を返します。タイムアウト・例外・非2xxは
// すべて false に落とし、リトライはしません。
func (v *Verifier) Verify(ctx context.Context, rawURL string) bool {
	if rawURL == "" || !strings.HasPrefix(rawURL, "http") {
		return false
	}

	if cached, found := v.probes.Get(rawURL); found {
		return cached.(bool)
	}

	alive := v.probe(ctx, rawURL)
	v.probes.Set(rawURL, alive, cache.DefaultExpiration)
	return alive
}

func (v *Verifier) probe(ctx context.Context, rawURL string) bool {
	pctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	proxied := v.proxyBase + url.QueryEscape(rawURL)
	req, err := http.NewRequestWithContext(pctx, http.MethodGet, proxied, nil)
	if err != nil {
		return false
	}

	resp, err := v.client.Do(req)
	if err != nil {
		// 到達不能・タイムアウトは「未確認」に降格するだけで伝播させない
		slog.Debug("リンク確認に失敗しました", "url", rawURL, "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
