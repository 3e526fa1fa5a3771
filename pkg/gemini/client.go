package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// InlineData はプロンプトに添付するインライン画像です。
type InlineData struct {
	MIMEType string
	Data     []byte
}

// Request は1回のテキスト/JSON生成リクエストです。呼び出しごとに
// 新規に組み立てられ、永続化はされません。
type Request struct {
	Model           string
	Prompt          string
	InlineImage     *InlineData   // マルチパート入力（任意）
	Schema          *genai.Schema // 指定時はJSONスキーマ制約付き出力
	Temperature     *float32
	MaxOutputTokens int32
}

// GenerativeClient はステージ関数から見たAIバックエンドの契約です。
// テストではモック実装に差し替えます。
type GenerativeClient interface {
	GenerateContent(ctx context.Context, req Request) (string, error)
	GenerateImage(ctx context.Context, model, prompt, aspectRatio string) ([]byte, error)
}

// Config は Client の構築パラメータです。
type Config struct {
	APIKey string
	Retry  RetryConfig
}

// Client は google.golang.org/genai をラップし、全リクエストを
// リトライ/分類器（Retry）経由で発行するトランスポートです。
// ワークフロー起動ごとに1度だけ構築し、認証情報を保持します。
type Client struct {
	genai *genai.Client
	retry RetryConfig
}

// NewClient は認証済みのトランスポートを構築します。
// APIキーが空の場合は ConfigurationError を返します。
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Reason: "APIキーが空のため、Geminiクライアントを初期化できません"}
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}

	return &Client{genai: gc, retry: cfg.Retry}, nil
}

// GenerateContent はテキストまたはスキーマ制約付きJSONを生成します。
// 戻り値は応答の生テキストです。
func (c *Client) GenerateContent(ctx context.Context, req Request) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.InlineImage != nil {
		parts = append(parts, genai.NewPartFromBytes(req.InlineImage.Data, req.InlineImage.MIMEType))
	}
	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	config := &genai.GenerateContentConfig{
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.Schema
	}

	resp, err := Retry(ctx, c.retry, func() (*genai.GenerateContentResponse, error) {
		return c.genai.Models.GenerateContent(ctx, req.Model, contents, config)
	})
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

// GenerateImage は画像を1枚生成し、JPEGバイト列を返します。
func (c *Client) GenerateImage(ctx context.Context, model, prompt, aspectRatio string) ([]byte, error) {
	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    aspectRatio,
		OutputMIMEType: "image/jpeg",
	}

	resp, err := Retry(ctx, c.retry, func() (*genai.GenerateImagesResponse, error) {
		return c.genai.Models.GenerateImages(ctx, model, prompt, config)
	})
	if err != nil {
		return nil, err
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil ||
		len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, fmt.Errorf("APIから画像データが返されませんでした")
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}
