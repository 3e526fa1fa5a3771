package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shouni/go-recipe-seo-kit/internal/config"
	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
)

// mockStages は全ステージ契約を満たすテスト用実装なのだ。呼び出し順と
// 引数を記録し、failAt に一致するステージで失敗する。
type mockStages struct {
	calls  []string
	args   map[string]string
	failAt string
}

func newMockStages() *mockStages {
	return &mockStages{args: make(map[string]string)}
}

func (m *mockStages) record(stage, arg string) error {
	m.calls = append(m.calls, stage)
	m.args[stage] = arg
	if m.failAt == stage {
		return fmt.Errorf("stage %s failed", stage)
	}
	return nil
}

func (m *mockStages) CompetitorAnalysis(_ context.Context, keyword, _, _, content string) (string, error) {
	if err := m.record("analysis", content); err != nil {
		return "", err
	}
	return "analysis of " + keyword, nil
}

func (m *mockStages) OutrankingStrategy(_ context.Context, analysis string) (string, error) {
	if err := m.record("strategy", analysis); err != nil {
		return "", err
	}
	return "strategy", nil
}

func (m *mockStages) RecipeSections(_ context.Context, analysis, _, _ string) (domain.RecipeSections, error) {
	if err := m.record("sections", analysis); err != nil {
		return domain.RecipeSections{}, err
	}
	return domain.RecipeSections{
		Ingredients:    []string{"eggs", "pasta"},
		Instructions:   []string{"Boil pasta."},
		NutritionFacts: "250 kcal",
		Category:       "Dinner",
	}, nil
}

func (m *mockStages) RelatedKeywords(_ context.Context, analysis string) (string, error) {
	if err := m.record("related_keywords", analysis); err != nil {
		return "", err
	}
	return "related", nil
}

func (m *mockStages) FAQs(_ context.Context, analysis, _ string) (string, error) {
	if err := m.record("faqs", analysis); err != nil {
		return "", err
	}
	return "faqs", nil
}

func (m *mockStages) InternalLinks(_ context.Context, keyword string) (string, error) {
	if err := m.record("internal_links", keyword); err != nil {
		return "", err
	}
	return "internal", nil
}

func (m *mockStages) ExternalLinks(_ context.Context, keyword, analysis, _, _ string) (string, error) {
	if err := m.record("external_links", analysis); err != nil {
		return "", err
	}
	return "external", nil
}

func (m *mockStages) FullArticle(_ context.Context, components domain.ArticleComponents) (string, error) {
	if err := m.record("article", components.TargetKeyword); err != nil {
		return "", err
	}
	return "[ARTICLE_START]# Generated Title\n\nBody text.[ARTICLE_END]", nil
}

func (m *mockStages) CompareWithCompetitors(_ context.Context, generatedArticle, _ string) (string, error) {
	if err := m.record("compare", generatedArticle); err != nil {
		return "", err
	}
	return "auto feedback", nil
}

func (m *mockStages) RegenerateArticle(_ context.Context, _ domain.ArticleComponents, _ string, feedback string) (string, error) {
	if err := m.record("regenerate", feedback); err != nil {
		return "", err
	}
	return "[ARTICLE_START]# Revised Title\n\nRevised body.[ARTICLE_END]", nil
}

// mockCollector は固定テキストを返す ContentCollector なのだ。
type mockCollector struct {
	content string
	err     error
}

func (m *mockCollector) Collect(context.Context, []string) (string, error) {
	return m.content, m.err
}

func analyzeConfig() config.Config {
	return config.Config{Options: config.GenerateOptions{
		Keyword:        "carbonara",
		Region:         "United States",
		Language:       "English",
		CompetitorURLs: []string{"https://a.example.com"},
	}}
}

func TestAnalyzeRunner_Run(t *testing.T) {
	t.Run("3ステージが順番に実行される", func(t *testing.T) {
		stages := newMockStages()
		runner := NewAnalyzeRunner(analyzeConfig(), &mockCollector{content: "competitor text"}, stages, nil)

		result, err := runner.Run(context.Background())
		if err != nil {
			t.Fatalf("分析ワークフローが失敗しました: %v", err)
		}

		want := []string{"analysis", "strategy", "sections"}
		if len(stages.calls) != len(want) {
			t.Fatalf("呼び出し回数が想定と異なります: %v", stages.calls)
		}
		for i, stage := range want {
			if stages.calls[i] != stage {
				t.Errorf("呼び出し順が想定と異なります: got %v", stages.calls)
				break
			}
		}
		if result.Sections.Category != "Dinner" {
			t.Errorf("レシピ構成要素が結果に反映されていません: %+v", result.Sections)
		}
	})

	t.Run("後続ステージは直前の分析結果を受け取る", func(t *testing.T) {
		stages := newMockStages()
		runner := NewAnalyzeRunner(analyzeConfig(), &mockCollector{content: "competitor text"}, stages, nil)

		result, err := runner.Run(context.Background())
		if err != nil {
			t.Fatalf("分析ワークフローが失敗しました: %v", err)
		}
		if stages.args["strategy"] != result.Analysis {
			t.Errorf("戦略ステージに渡された分析結果が一致しません: %q", stages.args["strategy"])
		}
		if stages.args["sections"] != result.Analysis {
			t.Errorf("抽出ステージに渡された分析結果が一致しません: %q", stages.args["sections"])
		}
	})

	t.Run("途中で失敗しても完了済みの結果は保持される", func(t *testing.T) {
		stages := newMockStages()
		stages.failAt = "strategy"
		runner := NewAnalyzeRunner(analyzeConfig(), &mockCollector{content: "competitor text"}, stages, nil)

		result, err := runner.Run(context.Background())
		if err == nil {
			t.Fatal("戦略ステージの失敗がエラーとして返されませんでした")
		}
		if result.Analysis == "" {
			t.Error("完了済みの分析結果が破棄されています")
		}
		// 失敗したステージ以降は起動されない
		for _, call := range stages.calls {
			if call == "sections" {
				t.Error("失敗後のステージが実行されています")
			}
		}
	})

	t.Run("収集失敗時はステージを起動しない", func(t *testing.T) {
		stages := newMockStages()
		runner := NewAnalyzeRunner(analyzeConfig(), &mockCollector{err: errors.New("fetch failed")}, stages, nil)

		if _, err := runner.Run(context.Background()); err == nil {
			t.Fatal("収集失敗がエラーとして返されませんでした")
		}
		if len(stages.calls) != 0 {
			t.Errorf("収集失敗後にステージが実行されています: %v", stages.calls)
		}
	})
}

func TestComponentsRunner_Run(t *testing.T) {
	analyzed := AnalyzeResult{
		Keyword:  "carbonara",
		Region:   "United States",
		Language: "English",
		Analysis: "analysis text",
		Sections: domain.RecipeSections{
			Ingredients:    []string{"eggs", "pasta"},
			Instructions:   []string{"Boil pasta.", "Mix eggs."},
			NutritionFacts: "250 kcal",
			Category:       "Dinner",
		},
	}

	t.Run("4ステージの結果と抽出済み情報を統合する", func(t *testing.T) {
		stages := newMockStages()
		runner := NewComponentsRunner(stages)

		components, err := runner.Run(context.Background(), analyzed)
		if err != nil {
			t.Fatalf("コンポーネント生成が失敗しました: %v", err)
		}

		if components.RelatedKeywords != "related" || components.ExternalLinks != "external" {
			t.Errorf("コンポーネントが統合されていません: %+v", components)
		}
		if components.Ingredients != "eggs\npasta" {
			t.Errorf("材料リストが改行連結されていません: %q", components.Ingredients)
		}
		if components.Category != "Dinner" {
			t.Errorf("カテゴリが引き継がれていません: %q", components.Category)
		}

		want := []string{"related_keywords", "faqs", "internal_links", "external_links"}
		for i, stage := range want {
			if stages.calls[i] != stage {
				t.Errorf("呼び出し順が想定と異なります: got %v", stages.calls)
				break
			}
		}
	})

	t.Run("分析結果なしはエラー", func(t *testing.T) {
		runner := NewComponentsRunner(newMockStages())
		if _, err := runner.Run(context.Background(), AnalyzeResult{Keyword: "carbonara"}); err == nil {
			t.Error("分析結果なしでエラーが返されませんでした")
		}
	})

	t.Run("失敗時も完了済みコンポーネントは保持される", func(t *testing.T) {
		stages := newMockStages()
		stages.failAt = "external_links"
		runner := NewComponentsRunner(stages)

		components, err := runner.Run(context.Background(), analyzed)
		if err == nil {
			t.Fatal("外部リンクステージの失敗がエラーとして返されませんでした")
		}
		if components.RelatedKeywords != "related" || components.InternalLinks != "internal" {
			t.Error("完了済みのコンポーネントが破棄されています")
		}
	})
}

func TestArticleRunner_Run(t *testing.T) {
	components := domain.ArticleComponents{
		TargetKeyword:      "carbonara",
		CompetitorAnalysis: "analysis text",
	}

	t.Run("改訂なしは生成とパースのみ", func(t *testing.T) {
		stages := newMockStages()
		runner := NewArticleRunner(stages)

		result, err := runner.Run(context.Background(), components, "", false)
		if err != nil {
			t.Fatalf("記事生成が失敗しました: %v", err)
		}
		if result.Revised {
			t.Error("改訂なしの実行で Revised が立っています")
		}
		if result.Parsed.Title != "Generated Title" {
			t.Errorf("タイトルの抽出が想定と異なります: %q", result.Parsed.Title)
		}
		if len(stages.calls) != 1 {
			t.Errorf("呼び出し回数が想定と異なります: %v", stages.calls)
		}
	})

	t.Run("手動フィードバックは比較をスキップして改訂する", func(t *testing.T) {
		stages := newMockStages()
		runner := NewArticleRunner(stages)

		result, err := runner.Run(context.Background(), components, "manual feedback", false)
		if err != nil {
			t.Fatalf("記事改訂が失敗しました: %v", err)
		}
		if !result.Revised || result.Parsed.Title != "Revised Title" {
			t.Errorf("改訂版が最終結果になっていません: %+v", result.Parsed)
		}
		if stages.args["regenerate"] != "manual feedback" {
			t.Errorf("手動フィードバックが改訂に渡されていません: %q", stages.args["regenerate"])
		}
		for _, call := range stages.calls {
			if call == "compare" {
				t.Error("手動フィードバック指定時に競合比較が実行されています")
			}
		}
	})

	t.Run("自動改訂は比較→改訂の順で実行する", func(t *testing.T) {
		stages := newMockStages()
		runner := NewArticleRunner(stages)

		result, err := runner.Run(context.Background(), components, "", true)
		if err != nil {
			t.Fatalf("自動改訂が失敗しました: %v", err)
		}

		want := []string{"article", "compare", "regenerate"}
		for i, stage := range want {
			if stages.calls[i] != stage {
				t.Errorf("呼び出し順が想定と異なります: got %v", stages.calls)
				break
			}
		}
		if stages.args["regenerate"] != "auto feedback" {
			t.Errorf("比較結果が改訂のフィードバックになっていません: %q", stages.args["regenerate"])
		}
		if result.Feedback != "auto feedback" {
			t.Errorf("フィードバックが結果に保持されていません: %q", result.Feedback)
		}
	})

	t.Run("改訂失敗時は初回版を保持したままエラーを返す", func(t *testing.T) {
		stages := newMockStages()
		stages.failAt = "regenerate"
		runner := NewArticleRunner(stages)

		result, err := runner.Run(context.Background(), components, "manual feedback", false)
		if err == nil {
			t.Fatal("改訂の失敗がエラーとして返されませんでした")
		}
		if result.Parsed.Title != "Generated Title" {
			t.Error("初回版の記事が破棄されています")
		}
	})
}

// mockImageGenerator は ImageGenerator のテスト用実装なのだ。
// 並列に呼ばれるため記録はミューテックスで保護する。
type mockImageGenerator struct {
	mu       sync.Mutex
	requests []string // "prompt|aspectRatio" 形式で記録
	failOn   string
}

func (m *mockImageGenerator) GenerateImage(_ context.Context, _ string, prompt, aspectRatio string) ([]byte, error) {
	m.mu.Lock()
	m.requests = append(m.requests, prompt+"|"+aspectRatio)
	m.mu.Unlock()
	if m.failOn != "" && strings.Contains(prompt, m.failOn) {
		return nil, fmt.Errorf("render failed")
	}
	return []byte{0xFF, 0xD8, 0xFF}, nil
}

func TestImageRunner_Run(t *testing.T) {
	details := domain.AllImageDetails{
		FeaturedImage:    domain.ImageDetails{Prompt: "featured prompt"},
		IngredientsImage: domain.ImageDetails{Prompt: "ingredients prompt"},
		StepImages: []domain.ImageDetails{
			{Prompt: "step one prompt"},
			{Prompt: "step two prompt"},
		},
	}

	pins := []domain.PinterestPinDetails{
		{Headline: "Pin one", ImageGuidance: "pin one guidance"},
	}

	t.Run("役割ごとのアスペクト比で全画像を生成する", func(t *testing.T) {
		gen := &mockImageGenerator{}
		runner := NewImageRunner(gen, "imagen-4.0-generate-001", time.Millisecond)

		images, err := runner.Run(context.Background(), details, pins)
		if err != nil {
			t.Fatalf("画像生成が失敗しました: %v", err)
		}
		if len(images) != 5 {
			t.Fatalf("生成枚数が想定と異なります: %d", len(images))
		}

		wantNames := []string{"featured", "ingredients", "step-1", "step-2", "pin-1"}
		for i, name := range wantNames {
			if images[i].Name != name {
				t.Errorf("画像名が想定と異なります: got %q, want %q", images[i].Name, name)
			}
		}

		// アスペクト比の検証（リクエスト順は並列のため不定）
		joined := strings.Join(gen.requests, "\n")
		if !strings.Contains(joined, "featured prompt|16:9") {
			t.Error("アイキャッチが16:9で生成されていません")
		}
		if !strings.Contains(joined, "ingredients prompt|3:4") || !strings.Contains(joined, "step one prompt|3:4") {
			t.Error("材料・手順画像が3:4で生成されていません")
		}
		if !strings.Contains(joined, "pin one guidance|9:16") {
			t.Error("ピン画像が9:16で生成されていません")
		}
	})

	t.Run("1枚でも失敗したら全体が失敗する", func(t *testing.T) {
		gen := &mockImageGenerator{failOn: "step one"}
		runner := NewImageRunner(gen, "imagen-4.0-generate-001", time.Millisecond)

		if _, err := runner.Run(context.Background(), details, nil); err == nil {
			t.Error("失敗した画像がエラーとして返されませんでした")
		}
	})

	t.Run("プロンプトが空のタスクは対象外", func(t *testing.T) {
		gen := &mockImageGenerator{}
		runner := NewImageRunner(gen, "imagen-4.0-generate-001", time.Millisecond)

		sparse := domain.AllImageDetails{
			FeaturedImage: domain.ImageDetails{Prompt: "featured prompt"},
			StepImages:    []domain.ImageDetails{{Prompt: ""}},
		}
		images, err := runner.Run(context.Background(), sparse, []domain.PinterestPinDetails{{Headline: "no guidance"}})
		if err != nil {
			t.Fatalf("画像生成が失敗しました: %v", err)
		}
		if len(images) != 1 {
			t.Errorf("空プロンプトが除外されていません: %d", len(images))
		}
	})
}

func TestSocialRunner_Run(t *testing.T) {
	stages := &mockSocialStages{}
	runner := NewSocialRunner(stages)
	components := domain.ArticleComponents{Ingredients: "eggs", Instructions: "Boil."}

	t.Run("両方の台本を生成する", func(t *testing.T) {
		article := domain.ParsedArticle{Title: "Carbonara", Body: "Body text."}
		result, err := runner.Run(context.Background(), article, components)
		if err != nil {
			t.Fatalf("台本生成が失敗しました: %v", err)
		}
		if result.YouTubeScript == "" || result.ReelsScript == "" {
			t.Errorf("台本が揃っていません: %+v", result)
		}
	})

	t.Run("本文なしはエラー", func(t *testing.T) {
		if _, err := runner.Run(context.Background(), domain.ParsedArticle{}, components); err == nil {
			t.Error("本文なしでエラーが返されませんでした")
		}
	})
}

type mockSocialStages struct{}

func (m *mockSocialStages) YouTubeScript(_ context.Context, title, _ string) (string, error) {
	return "### Scene 1: " + title, nil
}

func (m *mockSocialStages) ReelsScript(_ context.Context, title, _, _ string) (string, error) {
	return "### Title: " + title, nil
}

func TestAssetRunner_Run(t *testing.T) {
	stages := &mockAssetStages{}
	runner := NewAssetRunner(stages, "Trending & Viral")
	components := domain.ArticleComponents{TargetKeyword: "carbonara", RelatedKeywords: "pasta"}

	t.Run("画像メタ・キーワード・ピンを生成する", func(t *testing.T) {
		inspiration := &gemini.InlineData{MIMEType: "image/jpeg", Data: []byte{0xFF}}
		result, err := runner.Run(context.Background(), components, inspiration)
		if err != nil {
			t.Fatalf("アセット生成が失敗しました: %v", err)
		}
		if result.Images.FeaturedImage.Prompt == "" || len(result.Pinterest.Pins) == 0 {
			t.Errorf("アセットが揃っていません: %+v", result)
		}
		if !stages.pinsWithImage {
			t.Error("参考画像がピン生成に渡されていません")
		}
		if stages.keywordStyle != "Trending & Viral" {
			t.Errorf("キーワードスタイルが渡されていません: %q", stages.keywordStyle)
		}
	})
}

type mockAssetStages struct {
	pinsWithImage bool
	keywordStyle  string
}

func (m *mockAssetStages) ImageMetadata(context.Context, string, string, string) (domain.AllImageDetails, error) {
	return domain.AllImageDetails{FeaturedImage: domain.ImageDetails{Prompt: "p"}}, nil
}

func (m *mockAssetStages) PinterestContent(context.Context, string, string, string) (domain.AllPinterestContent, error) {
	return domain.AllPinterestContent{Pins: []domain.PinterestPinDetails{{Headline: "h"}}}, nil
}

func (m *mockAssetStages) PinterestKeywords(_ context.Context, _, style string) ([]string, error) {
	m.keywordStyle = style
	return []string{"k1"}, nil
}

func (m *mockAssetStages) PinterestPins(_ context.Context, _, _ string, inspiration *gemini.InlineData) (domain.AllPinterestContent, error) {
	m.pinsWithImage = inspiration != nil
	return domain.AllPinterestContent{Pins: []domain.PinterestPinDetails{{Headline: "h"}}}, nil
}
