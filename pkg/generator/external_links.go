package generator

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
	"github.com/shouni/go-recipe-seo-kit/pkg/prompts"
)

// MaxVerifiedLinks は記事に採用する外部リンクの上限です。候補は多めに
// 生成させ、生存確認を通過した先頭からこの件数だけ採用します。
const MaxVerifiedLinks = 4

// urlPattern は候補行からURLを抜き出すためのパターンです。閉じ括弧や
// 空白の直前までを1つのURLとみなします。
var urlPattern = regexp.MustCompile(`https?://[^\s)]+`)

// ExternalLinks は、権威性の高い健康・栄養系サイトへの外部リンク候補を
// 生成し、生存確認済みの行だけを返します。検証済みリンクが1件もない
// 場合は、生成された候補テキスト全体をそのまま返します。
func (g *Generator) ExternalLinks(ctx context.Context, keyword, analysis, region, language string) (string, error) {
	sites, exampleLink := healthSitesFor(region, language)

	raw, err := g.generateText(ctx, prompts.ModeExternalLinks, prompts.TemplateData{
		Keyword:     keyword,
		Analysis:    analysis,
		Region:      region,
		Language:    language,
		SiteList:    strings.Join(sites, "\n- "),
		ExampleLink: exampleLink,
	}, gemini.Request{})
	if err != nil {
		return "", err
	}

	verified := g.verifyCandidates(ctx, raw)
	if len(verified) == 0 {
		// 全滅時は未検証の候補をそのまま使います。リンク切れの可能性は
		// ありますが、外部リンクなしで記事を組むよりは有益です。
		slog.Warn("検証済み外部リンクが0件のため、未検証の候補を使用します", "keyword", keyword)
		return raw, nil
	}
	return strings.Join(verified, "\n"), nil
}

// verifyCandidates は候補テキストを行単位で走査し、URLを含み生存確認を
// 通過した行を出現順に最大 MaxVerifiedLinks 件まで収集します。
func (g *Generator) verifyCandidates(ctx context.Context, raw string) []string {
	var verified []string
	for _, line := range strings.Split(raw, "\n") {
		if len(verified) >= MaxVerifiedLinks {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		url := urlPattern.FindString(line)
		if url == "" {
			continue
		}
		if g.verifier.Verify(ctx, url) {
			verified = append(verified, line)
		}
	}
	return verified
}
