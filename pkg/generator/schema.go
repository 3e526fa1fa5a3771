package generator

import "google.golang.org/genai"

// recipeSectionsSchema は、カテゴリを許可語彙に制約したレシピ構成要素の
// 応答スキーマを構築します。
func recipeSectionsSchema(categories []string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"ingredients": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"instructions": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"nutritionFacts": {Type: genai.TypeString},
			"category": {
				Type: genai.TypeString,
				Enum: categories,
			},
		},
		Required: []string{"ingredients", "instructions", "nutritionFacts", "category"},
	}
}

// imageDetailsSchema は画像1枚分のプロンプト＋メタデータのスキーマです。
func imageDetailsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"prompt":      {Type: genai.TypeString},
			"title":       {Type: genai.TypeString},
			"altText":     {Type: genai.TypeString},
			"caption":     {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
		},
		Required: []string{"prompt", "title", "altText", "caption", "description"},
	}
}

// allImageDetailsSchema は記事1本分の画像アセット一式のスキーマです。
func allImageDetailsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"featuredImage":    imageDetailsSchema(),
			"ingredientsImage": imageDetailsSchema(),
			"stepImages": {
				Type:  genai.TypeArray,
				Items: imageDetailsSchema(),
			},
		},
		Required: []string{"featuredImage", "ingredientsImage", "stepImages"},
	}
}

// pinterestPinsSchema は Pinterest ピン一式のスキーマです。
func pinterestPinsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"pins": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"headline":      {Type: genai.TypeString},
						"description":   {Type: genai.TypeString},
						"altText":       {Type: genai.TypeString},
						"imageGuidance": {Type: genai.TypeString},
					},
					Required: []string{"headline", "description", "altText", "imageGuidance"},
				},
			},
		},
		Required: []string{"pins"},
	}
}

// keywordListSchema はキーワード文字列の配列を1キーに持つ応答のスキーマです。
func keywordListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"keywords": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"keywords"},
	}
}
