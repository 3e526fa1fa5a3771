package config

import (
	"os"
	"testing"
)

// unsetenv は t.Setenv で復元を登録してから変数を完全に除去するのだ。
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfig(t *testing.T) {
	t.Run("鍵取得エンドポイントは未指定なら空のままであること", func(t *testing.T) {
		unsetenv(t, "GEMINI_KEY_ENDPOINT")

		cfg := LoadConfig()
		// 空のままなら、キー解決側が ConfigurationError で明確に案内できるのだ
		if cfg.KeyEndpoint != "" {
			t.Errorf("エンドポイントのデフォルトが空ではありません: %q", cfg.KeyEndpoint)
		}
	})

	t.Run("環境変数のエンドポイントが反映されること", func(t *testing.T) {
		t.Setenv("GEMINI_KEY_ENDPOINT", "https://keys.example.com/api/get-key")

		cfg := LoadConfig()
		if cfg.KeyEndpoint != "https://keys.example.com/api/get-key" {
			t.Errorf("エンドポイントが反映されていません: %q", cfg.KeyEndpoint)
		}
	})

	t.Run("モデルのデフォルトが設定されること", func(t *testing.T) {
		unsetenv(t, "GEMINI_MODEL")
		unsetenv(t, "IMAGE_GEMINI_MODEL")

		cfg := LoadConfig()
		if cfg.GeminiModel != DefaultModel {
			t.Errorf("テキストモデルのデフォルトが想定と異なります: %q", cfg.GeminiModel)
		}
		if cfg.ImageModel != DefaultImageModel {
			t.Errorf("画像モデルのデフォルトが想定と異なります: %q", cfg.ImageModel)
		}
	})
}
