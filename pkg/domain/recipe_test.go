package domain

import (
	"testing"
)

func TestCategoriesFor(t *testing.T) {
	t.Run("フランス語圏では専用語彙が選択されること", func(t *testing.T) {
		got := CategoriesFor("France", "French")
		if len(got) != len(FrenchCategories) {
			t.Fatalf("期待値 %d 件, 実際の値 %d 件", len(FrenchCategories), len(got))
		}
		if got[0] != "Moins de 3€ / pers" {
			t.Errorf("先頭カテゴリが異なります: %s", got[0])
		}
	})

	t.Run("地域と言語の片方だけ一致してもデフォルトになること", func(t *testing.T) {
		cases := [][2]string{
			{"France", "English"},
			{"United States", "French"},
			{"Japan", "Japanese"},
			{"", ""},
		}
		for _, c := range cases {
			got := CategoriesFor(c[0], c[1])
			if len(got) != len(DefaultCategories) || got[0] != "Breakfast" {
				t.Errorf("(%s, %s) でデフォルト語彙が返されませんでした", c[0], c[1])
			}
		}
	})
}

func TestRecipeSectionsValidate(t *testing.T) {
	r := RecipeSections{Category: "Dinner"}

	if err := r.Validate(DefaultCategories); err != nil {
		t.Errorf("許可されたカテゴリでエラーが発生しました: %v", err)
	}

	r.Category = "Dessert"
	if err := r.Validate(DefaultCategories); err == nil {
		t.Error("語彙外のカテゴリでエラーが発生しませんでした")
	}
}
