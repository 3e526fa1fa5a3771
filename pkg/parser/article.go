package parser

import (
	"regexp"
	"strings"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
)

// ParseArticle は、AIが返した区切りタグ付きテキストを ParsedArticle に
// 変換します。このパーサは決して失敗しません。どの区切りペアが欠けていても
// 該当フィールドを空にした完全な形のレコードを返します。
// [ARTICLE_START] ペアが丸ごと無い場合も本文が空になるだけで、エラーには
// なりません。本文の有無は呼び出し側が HasBody で判定します。
func ParseArticle(raw string) domain.ParsedArticle {
	body := extractSection(ArticleRegex, raw)
	title := ""

	// 本文の先頭行が "# 見出し" であればタイトルとして抜き出し、本文から除去する
	if m := TitleRegex.FindStringSubmatch(body); m != nil {
		title = strings.TrimSpace(m[1])
		body = strings.TrimSpace(body[len(m[0]):])
	}

	return domain.ParsedArticle{
		Title:            title,
		Body:             body,
		TitleTags:        splitListSection(extractSection(TitleTagsRegex, raw)),
		MetaDescriptions: splitListSection(extractSection(MetaDescriptionsRegex, raw)),
		RecipeRecap:      extractSection(RecipeRecapRegex, raw),
		Category:         extractSection(CategoryRegex, raw),
		RecipeJSON:       extractSection(RecipeJSONRegex, raw),
	}
}

// extractSection は開始/終了マーカーに挟まれた部分文字列をトリムして返します。
// マーカーが存在しない場合は空文字を返します。
func extractSection(re *regexp.Regexp, raw string) string {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// splitListSection は複数行のリスト領域を行単位に分割します。
// 各行の先頭の序数マーカー（"1. " など）を取り除き、空行は捨てます。
func splitListSection(block string) []string {
	items := []string{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(OrdinalRegex.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
