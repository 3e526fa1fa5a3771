package domain

// ArticleComponents は、記事生成に投入する全素材の不変スナップショットです。
// ユーザー入力とAI生成結果（キーワード、リンク、レシピ情報、FAQなど）を
// まとめて保持し、記事生成・再生成の入力契約として機能します。
type ArticleComponents struct {
	TargetKeyword      string `json:"target_keyword"`
	RelatedKeywords    string `json:"related_keywords"`
	InternalLinks      string `json:"internal_links"`
	ExternalLinks      string `json:"external_links"`
	Ingredients        string `json:"ingredients"`
	Instructions       string `json:"instructions"`
	Nutrition          string `json:"nutrition"`
	FAQs               string `json:"faqs"`
	CompetitorAnalysis string `json:"competitor_analysis"`
	Category           string `json:"category"`
}

// ParsedArticle は、AIが返す区切りタグ付きテキストを解析した結果です。
// 欠落したセクションは空文字（リストは空スライス）になります。
// 本文が空のままでも解析自体は成功扱いなので、呼び出し側が空チェックを行います。
type ParsedArticle struct {
	Title            string   `json:"title"`
	Body             string   `json:"body"`
	TitleTags        []string `json:"title_tags"`
	MetaDescriptions []string `json:"meta_descriptions"`
	RecipeRecap      string   `json:"recipe_recap"`
	Category         string   `json:"category"`
	RecipeJSON       string   `json:"recipe_json"`
}

// HasBody は本文が抽出できたかどうかを返します。
func (p ParsedArticle) HasBody() bool {
	return p.Body != ""
}

// SavedArticle は履歴ストアに永続化される1件分の成果物です。
type SavedArticle struct {
	ID          string               `json:"id"`
	Timestamp   int64                `json:"timestamp"`
	Title       string               `json:"title"`
	Keyword     string               `json:"keyword"`
	Content     string               `json:"content"`
	Components  ArticleComponents    `json:"components"`
	Images      *AllImageDetails     `json:"images,omitempty"`
	Pinterest   *AllPinterestContent `json:"pinterest,omitempty"`
	YouTube     string               `json:"youtube,omitempty"`
	ReelsScript string               `json:"reels_script,omitempty"`
}
