package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
	"github.com/shouni/go-recipe-seo-kit/pkg/prompts"
)

// decodeStage は、スキーマ制約付きステージの応答JSONをデコードします。
// 失敗時は生テキストをログに残し、FormatError を返します。
func decodeStage[T any](stage, raw string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slog.Error("応答JSONのデコードに失敗しました", "stage", stage, "raw", raw)
		return out, &gemini.FormatError{Stage: stage, Err: err}
	}
	return out, nil
}

// RecipeSections は、競合分析からレシピの構成要素（材料・手順・栄養成分・
// カテゴリ）を構造化して抽出します。カテゴリは地域と言語に応じた許可語彙に
// スキーマで制約され、デコード後にも検証されます。
func (g *Generator) RecipeSections(ctx context.Context, analysis, region, language string) (domain.RecipeSections, error) {
	categories := domain.CategoriesFor(region, language)

	raw, err := g.generateText(ctx, prompts.ModeRecipeSections, prompts.TemplateData{
		Analysis: analysis,
	}, gemini.Request{
		Schema: recipeSectionsSchema(categories),
	})
	if err != nil {
		return domain.RecipeSections{}, err
	}

	sections, err := decodeStage[domain.RecipeSections](prompts.ModeRecipeSections, raw)
	if err != nil {
		return domain.RecipeSections{}, err
	}
	if err := sections.Validate(categories); err != nil {
		return domain.RecipeSections{}, &gemini.FormatError{Stage: prompts.ModeRecipeSections, Err: err}
	}
	return sections, nil
}

// ImageMetadata は、記事1本分の画像プロンプトとSEOメタデータ一式を生成します。
func (g *Generator) ImageMetadata(ctx context.Context, keyword, ingredients, instructions string) (domain.AllImageDetails, error) {
	raw, err := g.generateText(ctx, prompts.ModeImageMeta, prompts.TemplateData{
		Keyword:      keyword,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, gemini.Request{
		Schema: allImageDetailsSchema(),
	})
	if err != nil {
		return domain.AllImageDetails{}, err
	}
	return decodeStage[domain.AllImageDetails](prompts.ModeImageMeta, raw)
}

// PinterestContent は、記事情報から10件分のPinterestピン素材を生成します。
func (g *Generator) PinterestContent(ctx context.Context, keyword, relatedKeywords, articleTitle string) (domain.AllPinterestContent, error) {
	raw, err := g.generateText(ctx, prompts.ModePinterestContent, prompts.TemplateData{
		Keyword:         keyword,
		RelatedKeywords: relatedKeywords,
		ArticleTitle:    articleTitle,
	}, gemini.Request{
		Schema: pinterestPinsSchema(),
	})
	if err != nil {
		return domain.AllPinterestContent{}, err
	}

	content, err := decodeStage[domain.AllPinterestContent](prompts.ModePinterestContent, raw)
	if err != nil {
		return domain.AllPinterestContent{}, err
	}
	if len(content.Pins) == 0 {
		return domain.AllPinterestContent{}, &gemini.FormatError{
			Stage: prompts.ModePinterestContent,
			Err:   fmt.Errorf("ピンが1件も返されませんでした"),
		}
	}
	return content, nil
}

// PinterestKeywords は、メインキーワードとスタイル指定からピンタイトル向けの
// 関連キーワードを10件生成します。
func (g *Generator) PinterestKeywords(ctx context.Context, keyword, keywordStyle string) ([]string, error) {
	raw, err := g.generateText(ctx, prompts.ModePinterestKeywords, prompts.TemplateData{
		Keyword:      keyword,
		KeywordStyle: keywordStyle,
	}, gemini.Request{
		Schema: keywordListSchema(),
	})
	if err != nil {
		return nil, err
	}

	decoded, err := decodeStage[struct {
		Keywords []string `json:"keywords"`
	}](prompts.ModePinterestKeywords, raw)
	if err != nil {
		return nil, err
	}
	return decoded.Keywords, nil
}

// PinterestPins は、画像生成AI向けの詳細なガイダンス付きでピン素材を
// 生成します。inspiration を渡すとビジュアル参考画像として添付されます。
func (g *Generator) PinterestPins(ctx context.Context, keyword, relatedKeywords string, inspiration *gemini.InlineData) (domain.AllPinterestContent, error) {
	raw, err := g.generateText(ctx, prompts.ModePinterestPins, prompts.TemplateData{
		Keyword:         keyword,
		RelatedKeywords: relatedKeywords,
		HasInspiration:  inspiration != nil,
	}, gemini.Request{
		InlineImage: inspiration,
		Schema:      pinterestPinsSchema(),
	})
	if err != nil {
		return domain.AllPinterestContent{}, err
	}

	content, err := decodeStage[domain.AllPinterestContent](prompts.ModePinterestPins, raw)
	if err != nil {
		return domain.AllPinterestContent{}, err
	}
	if len(content.Pins) == 0 {
		return domain.AllPinterestContent{}, &gemini.FormatError{
			Stage: prompts.ModePinterestPins,
			Err:   fmt.Errorf("ピンが1件も返されませんでした"),
		}
	}
	return content, nil
}
