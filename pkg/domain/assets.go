package domain

// ImageDetails は1枚の画像に紐づくプロンプトとSEOメタデータの組です。
type ImageDetails struct {
	Prompt      string `json:"prompt"`
	Title       string `json:"title"`
	AltText     string `json:"altText"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

// AllImageDetails は記事1本分の画像アセット一式です。
// アイキャッチ（16:9）、材料画像（3:4）、手順画像（3:4）で構成されます。
type AllImageDetails struct {
	FeaturedImage    ImageDetails   `json:"featuredImage"`
	IngredientsImage ImageDetails   `json:"ingredientsImage"`
	StepImages       []ImageDetails `json:"stepImages"`
}

// PinterestPinDetails は Pinterest ピン1件分のアセットです。
type PinterestPinDetails struct {
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	AltText       string `json:"altText"`
	ImageGuidance string `json:"imageGuidance"`
}

// AllPinterestContent は生成されたピン一式を保持します。
type AllPinterestContent struct {
	Pins []PinterestPinDetails `json:"pins"`
}

// GeneratedImage はレンダリング済み画像1枚分のバイナリです。
type GeneratedImage struct {
	Name     string // 保存時のベース名（例: featured, step-1）
	Data     []byte
	MimeType string
}

// 画像生成で使用するアスペクト比の定数です。
const (
	AspectRatioSquare    = "1:1"
	AspectRatioWide      = "16:9"
	AspectRatioVertical  = "9:16"
	AspectRatioLandscape = "4:3"
	AspectRatioPortrait  = "3:4"
)
