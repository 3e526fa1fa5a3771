package prompts

import (
	_ "embed"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
)

// パイプラインの各ステージに対応するテンプレートモードです。
const (
	ModeAnalysis          = "analysis"
	ModeStrategy          = "strategy"
	ModeRecipeSections    = "recipe_sections"
	ModeRelatedKeywords   = "related_keywords"
	ModeFAQs              = "faqs"
	ModeInternalLinks     = "internal_links"
	ModeExternalLinks     = "external_links"
	ModeArticle           = "article"
	ModeRevise            = "revise"
	ModeCompare           = "compare"
	ModeImageMeta         = "image_meta"
	ModePinterestContent  = "pinterest_content"
	ModePinterestKeywords = "pinterest_keywords"
	ModePinterestPins     = "pinterest_pins"
	ModeYouTube           = "youtube"
	ModeReels             = "reels"
)

// TemplateData は各ステージのプロンプトテンプレートに渡すデータ構造です。
// ステージごとに使用するフィールドは異なります。未使用フィールドは
// 空のままで問題ありません。
type TemplateData struct {
	Keyword           string
	Region            string
	Language          string
	CompetitorContent string
	Analysis          string
	Components        domain.ArticleComponents
	OriginalArticle   string
	Feedback          string
	GeneratedArticle  string
	ArticleTitle      string
	ArticleContent    string
	Ingredients       string
	Instructions      string
	RelatedKeywords   string
	KeywordStyle      string
	SiteList          string
	ExampleLink       string
	HasInspiration    bool
	FallbackCategory  string
}

var (
	//go:embed analysis.md
	AnalysisPrompt string
	//go:embed strategy.md
	StrategyPrompt string
	//go:embed recipe_sections.md
	RecipeSectionsPrompt string
	//go:embed related_keywords.md
	RelatedKeywordsPrompt string
	//go:embed faqs.md
	FAQsPrompt string
	//go:embed internal_links.md
	InternalLinksPrompt string
	//go:embed external_links.md
	ExternalLinksPrompt string
	//go:embed article.md
	ArticlePrompt string
	//go:embed revise.md
	RevisePrompt string
	//go:embed compare.md
	ComparePrompt string
	//go:embed image_meta.md
	ImageMetaPrompt string
	//go:embed pinterest_content.md
	PinterestContentPrompt string
	//go:embed pinterest_keywords.md
	PinterestKeywordsPrompt string
	//go:embed pinterest_pins.md
	PinterestPinsPrompt string
	//go:embed youtube.md
	YouTubePrompt string
	//go:embed reels.md
	ReelsPrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップです。
var allTemplates = map[string]string{
	ModeAnalysis:          AnalysisPrompt,
	ModeStrategy:          StrategyPrompt,
	ModeRecipeSections:    RecipeSectionsPrompt,
	ModeRelatedKeywords:   RelatedKeywordsPrompt,
	ModeFAQs:              FAQsPrompt,
	ModeInternalLinks:     InternalLinksPrompt,
	ModeExternalLinks:     ExternalLinksPrompt,
	ModeArticle:           ArticlePrompt,
	ModeRevise:            RevisePrompt,
	ModeCompare:           ComparePrompt,
	ModeImageMeta:         ImageMetaPrompt,
	ModePinterestContent:  PinterestContentPrompt,
	ModePinterestKeywords: PinterestKeywordsPrompt,
	ModePinterestPins:     PinterestPinsPrompt,
	ModeYouTube:           YouTubePrompt,
	ModeReels:             ReelsPrompt,
}
