package parser

import (
	"strings"
	"testing"
)

func TestParseArticle(t *testing.T) {
	t.Run("全セクションが揃った応答を解析できること", func(t *testing.T) {
		raw := "[ARTICLE_START]# My Title\nBody text[ARTICLE_END]" +
			"[TITLE_TAGS_START]1. Tag One\n2. Tag Two[TITLE_TAGS_END]" +
			"[META_DESCRIPTIONS_START]1. Desc One\n\n2. Desc Two[META_DESCRIPTIONS_END]" +
			"[RECIPE_RECAP_START]Recap here[RECIPE_RECAP_END]" +
			"[CATEGORY_START]Dinner[CATEGORY_END]" +
			"[RECIPE_JSON_START]{\"name\":\"x\"}[RECIPE_JSON_END]"

		got := ParseArticle(raw)

		if got.Title != "My Title" {
			t.Errorf("期待値 'My Title', 実際の値 '%s'", got.Title)
		}
		if got.Body != "Body text" {
			t.Errorf("期待値 'Body text', 実際の値 '%s'", got.Body)
		}
		if len(got.TitleTags) != 2 || got.TitleTags[0] != "Tag One" || got.TitleTags[1] != "Tag Two" {
			t.Errorf("タイトルタグの解析結果が不正です: %v", got.TitleTags)
		}
		if len(got.MetaDescriptions) != 2 || got.MetaDescriptions[1] != "Desc Two" {
			t.Errorf("メタディスクリプションの解析結果が不正です: %v", got.MetaDescriptions)
		}
		if got.RecipeRecap != "Recap here" || got.Category != "Dinner" {
			t.Errorf("要約またはカテゴリが不正です: %+v", got)
		}
		if got.RecipeJSON != `{"name":"x"}` {
			t.Errorf("レシピJSONが不正です: %s", got.RecipeJSON)
		}
	})

	t.Run("どんな入力でも完全な形のレコードが返ること", func(t *testing.T) {
		inputs := []string{
			"",
			"just plain text without any markers",
			"[ARTICLE_START]unterminated",
			"[TITLE_TAGS_END]reversed[TITLE_TAGS_START]",
			strings.Repeat("x", 10000),
		}
		for _, in := range inputs {
			got := ParseArticle(in)
			if got.TitleTags == nil || got.MetaDescriptions == nil {
				t.Errorf("リストフィールドが nil です。入力: %.30q", in)
			}
			if got.Body != "" || got.Title != "" {
				t.Errorf("マーカーなしで本文が抽出されました。入力: %.30q", in)
			}
		}
	})

	t.Run("本文ペアがない場合は空本文の成功扱いになること", func(t *testing.T) {
		got := ParseArticle("[CATEGORY_START]Lunch[CATEGORY_END]")
		if got.HasBody() {
			t.Error("本文が無いのに HasBody が true です")
		}
		if got.Category != "Lunch" {
			t.Errorf("他のセクションが独立して解析されていません: %s", got.Category)
		}
	})

	t.Run("先頭行が見出しでない場合はタイトルが空になること", func(t *testing.T) {
		got := ParseArticle("[ARTICLE_START]No heading here\nsecond line[ARTICLE_END]")
		if got.Title != "" {
			t.Errorf("タイトルは空のはずです: %s", got.Title)
		}
		if got.Body != "No heading here\nsecond line" {
			t.Errorf("本文が領域全体になっていません: %s", got.Body)
		}
	})

	t.Run("序数マーカーなしのリスト行も取り込まれること", func(t *testing.T) {
		got := ParseArticle("[TITLE_TAGS_START]Plain Tag\n3. Numbered Tag[TITLE_TAGS_END]")
		if len(got.TitleTags) != 2 || got.TitleTags[0] != "Plain Tag" || got.TitleTags[1] != "Numbered Tag" {
			t.Errorf("リスト行の解析結果が不正です: %v", got.TitleTags)
		}
	})
}
