package domain

import (
	"fmt"
	"slices"
)

// RecipeSections は、競合分析から抽出したレシピの構成要素です。
type RecipeSections struct {
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions"`
	NutritionFacts string   `json:"nutritionFacts"`
	Category       string   `json:"category"`
}

// DefaultCategories は標準のブログカテゴリ一覧です。
var DefaultCategories = []string{"Breakfast", "Lunch", "Dinner", "Snacks", "Salad"}

// FrenchCategories はフランス語圏向けのカテゴリ一覧です。
// 節約レシピ系ブログの語彙に合わせてあります。
var FrenchCategories = []string{
	"Moins de 3€ / pers",
	"Repas Familiaux",
	"Menu Fin de Mois",
	"Spécial Étudiant",
	"Entrées & Apéros",
	"Plats Principaux",
	"Desserts Éco",
	"Boulangerie Maison",
	"Recettes Airfryer",
	"Batch Cooking",
	"Prêt en 20 min",
	"Lunchbox",
	"Cuisiner les Restes",
	"Calendrier de Saison",
	"Fait Maison (DIY)",
	"Astuces Cuisine",
}

// CategoriesFor は地域と言語の組み合わせに応じたカテゴリ語彙を返します。
// フランス + フランス語の場合のみ専用語彙、それ以外はデフォルトです。
func CategoriesFor(region, language string) []string {
	if region == "France" && language == "French" {
		return FrenchCategories
	}
	return DefaultCategories
}

// Validate は Category が許可された語彙に含まれるかを検証します。
func (r RecipeSections) Validate(allowed []string) error {
	if !slices.Contains(allowed, r.Category) {
		return fmt.Errorf("カテゴリ %q は許可リストに含まれていません", r.Category)
	}
	return nil
}
