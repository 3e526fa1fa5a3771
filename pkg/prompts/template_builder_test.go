package prompts

import (
	"strings"
	"testing"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
)

func TestNewTextPromptBuilder(t *testing.T) {
	builder, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("ビルダーの初期化に失敗しました: %v", err)
	}
	if len(builder.templates) != len(allTemplates) {
		t.Errorf("解析済みテンプレート数が一致しません: got %d, want %d", len(builder.templates), len(allTemplates))
	}
}

func TestTextPromptBuilder_Build(t *testing.T) {
	builder, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("ビルダーの初期化に失敗しました: %v", err)
	}

	data := TemplateData{
		Keyword:         "chocolate chip cookies",
		Region:          "United States",
		Language:        "English",
		RelatedKeywords: "easy cookies, homemade cookies",
		ArticleTitle:    "The Best Chocolate Chip Cookies",
		ArticleContent:  "Cream the butter and sugar.",
		Ingredients:     "flour, butter, sugar",
		Instructions:    "1. Mix. 2. Bake.",
		KeywordStyle:    "Trending & Viral",
		SiteList:        "- https://www.healthline.com",
		ExampleLink:     "https://www.healthline.com/nutrition/foods",
		Components: domain.ArticleComponents{
			TargetKeyword: "chocolate chip cookies",
		},
		FallbackCategory: "Snacks",
	}

	t.Run("全モードがエラーなく描画できる", func(t *testing.T) {
		for mode := range allTemplates {
			prompt, err := builder.Build(mode, data)
			if err != nil {
				t.Errorf("モード '%s' の構築に失敗しました: %v", mode, err)
				continue
			}
			if strings.TrimSpace(prompt) == "" {
				t.Errorf("モード '%s' のプロンプトが空です", mode)
			}
		}
	})

	t.Run("キーワードがプロンプトに展開される", func(t *testing.T) {
		prompt, err := builder.Build(ModeAnalysis, data)
		if err != nil {
			t.Fatalf("構築に失敗しました: %v", err)
		}
		if !strings.Contains(prompt, data.Keyword) {
			t.Errorf("キーワード '%s' がプロンプトに含まれていません", data.Keyword)
		}
	})

	t.Run("インスピレーション画像の有無で文言が切り替わる", func(t *testing.T) {
		const marker = "An inspiration image has been provided"

		withImage := data
		withImage.HasInspiration = true
		prompt, err := builder.Build(ModePinterestPins, withImage)
		if err != nil {
			t.Fatalf("構築に失敗しました: %v", err)
		}
		if !strings.Contains(prompt, marker) {
			t.Error("画像ありの場合に案内文が含まれていません")
		}

		prompt, err = builder.Build(ModePinterestPins, data)
		if err != nil {
			t.Fatalf("構築に失敗しました: %v", err)
		}
		if strings.Contains(prompt, marker) {
			t.Error("画像なしの場合に案内文が含まれてはいけません")
		}
	})

	t.Run("不明なモードはエラー", func(t *testing.T) {
		if _, err := builder.Build("no_such_mode", data); err == nil {
			t.Error("不明なモードでエラーが返されませんでした")
		}
	})
}
