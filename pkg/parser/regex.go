package parser

import "regexp"

var (
	// ArticleRegex は [ARTICLE_START]...[ARTICLE_END] の本文領域をキャプチャします。
	ArticleRegex = regexp.MustCompile(`(?s)\[ARTICLE_START\](.*?)\[ARTICLE_END\]`)

	// TitleTagsRegex はSEOタイトルタグ候補の領域をキャプチャします。
	TitleTagsRegex = regexp.MustCompile(`(?s)\[TITLE_TAGS_START\](.*?)\[TITLE_TAGS_END\]`)

	// MetaDescriptionsRegex はメタディスクリプション候補の領域をキャプチャします。
	MetaDescriptionsRegex = regexp.MustCompile(`(?s)\[META_DESCRIPTIONS_START\](.*?)\[META_DESCRIPTIONS_END\]`)

	// RecipeRecapRegex はレシピカード用の要約領域をキャプチャします。
	RecipeRecapRegex = regexp.MustCompile(`(?s)\[RECIPE_RECAP_START\](.*?)\[RECIPE_RECAP_END\]`)

	// CategoryRegex はブログカテゴリの領域をキャプチャします。
	CategoryRegex = regexp.MustCompile(`(?s)\[CATEGORY_START\](.*?)\[CATEGORY_END\]`)

	// RecipeJSONRegex は Schema.org/Recipe 形式のJSON領域をキャプチャします。
	RecipeJSONRegex = regexp.MustCompile(`(?s)\[RECIPE_JSON_START\](.*?)\[RECIPE_JSON_END\]`)

	// TitleRegex は本文先頭の "# タイトル" 行をキャプチャします。
	TitleRegex = regexp.MustCompile(`^#\s+(.*)`)

	// OrdinalRegex はリスト行の先頭の "1. " 形式の序数マーカーにマッチします。
	OrdinalRegex = regexp.MustCompile(`^\d+\.\s*`)
)
