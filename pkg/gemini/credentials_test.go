package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestKeyResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("環境変数のキーが最優先されること", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "env-key")
		r := NewKeyResolver(nil, "")
		key, err := r.Resolve(ctx)
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if key != "env-key" {
			t.Errorf("期待値 env-key, 実際の値 %s", key)
		}
	})

	t.Run("エンドポイントから取得してキャッシュされること", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		fetches := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fetches++
			w.Write([]byte(`{"apiKey":"remote-key"}`))
		}))
		defer srv.Close()

		r := NewKeyResolver(http.DefaultClient, srv.URL)
		for i := 0; i < 3; i++ {
			key, err := r.Resolve(ctx)
			if err != nil {
				t.Fatalf("予期しないエラー: %v", err)
			}
			if key != "remote-key" {
				t.Errorf("期待値 remote-key, 実際の値 %s", key)
			}
		}
		if fetches != 1 {
			t.Errorf("キャッシュが効いていません。フェッチ回数: %d", fetches)
		}
	})

	t.Run("どのソースからも解決できない場合はConfigurationErrorになること", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		r := NewKeyResolver(nil, "")
		_, err := r.Resolve(ctx)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("ConfigurationError ではありません: %v", err)
		}
	})

	t.Run("エンドポイントの異常ステータスはConfigurationErrorになること", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		r := NewKeyResolver(http.DefaultClient, srv.URL)
		_, err := r.Resolve(ctx)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("ConfigurationError ではありません: %v", err)
		}
	})
}
