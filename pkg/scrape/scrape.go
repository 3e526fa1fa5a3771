package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// ContentSeparator は複数ソースの本文を連結する際の区切りです。
// 分析プロンプト側もこの区切りを前提にしています。
const ContentSeparator = "\n---\n"

// TextExtractor はURLから本文テキストを抽出する契約です。
// go-web-exact の Extractor がこれを満たします。
type TextExtractor interface {
	FetchAndExtractText(ctx context.Context, url string) (string, bool, error)
}

// Collector は競合記事のURL群から分析対象の本文を収集します。
type Collector struct {
	extractor TextExtractor
}

// NewCollector は Collector を初期化します。
func NewCollector(extractor TextExtractor) *Collector {
	return &Collector{extractor: extractor}
}

// Collect は各URLの本文を順に抽出し、区切り文字で連結して返します。
// 一部のURLで抽出に失敗しても処理は継続し、全件失敗した場合のみ
// エラーを返します。
func (c *Collector) Collect(ctx context.Context, urls []string) (string, error) {
	if len(urls) == 0 {
		return "", fmt.Errorf("競合URLが指定されていません")
	}

	var texts []string
	for _, url := range urls {
		text, _, err := c.extractor.FetchAndExtractText(ctx, url)
		if err != nil {
			slog.Warn("競合記事の本文抽出に失敗しました", "url", url, "error", err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			slog.Warn("競合記事の本文が空でした", "url", url)
			continue
		}
		texts = append(texts, text)
		slog.Info("競合記事を取得しました", "url", url, "chars", len(text))
	}

	if len(texts) == 0 {
		return "", fmt.Errorf("全%d件のURLから本文を抽出できませんでした", len(urls))
	}
	return strings.Join(texts, ContentSeparator), nil
}
