package generator

import (
	"context"
	"fmt"

	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"
	"github.com/shouni/go-recipe-seo-kit/pkg/prompts"
)

// 各ステージの生成パラメータです。記事系は長文のためトークン上限が大きく、
// 動画台本系は短いので抑えてあります。
const (
	articleTemperature float32 = 0.7
	reviseTemperature  float32 = 0.8
	scriptTemperature  float32 = 0.7
	reelsTemperature   float32 = 0.8

	articleMaxTokens int32 = 8192
	scriptMaxTokens  int32 = 4096
)

// LinkVerifier は外部リンクの生存確認の契約です。
type LinkVerifier interface {
	Verify(ctx context.Context, rawURL string) bool
}

// Generator は、記事制作パイプラインの全ステージを提供します。
// 各ステージはプロンプト構築→AI呼び出し→後処理の順で動作し、
// ステートレスなので同一インスタンスを並行して利用できます。
type Generator struct {
	client   gemini.GenerativeClient
	builder  prompts.PromptBuilder
	verifier LinkVerifier
	model    string
}

// New は Generator を初期化します。model はテキスト生成モデル名です。
func New(client gemini.GenerativeClient, builder prompts.PromptBuilder, verifier LinkVerifier, model string) *Generator {
	return &Generator{
		client:   client,
		builder:  builder,
		verifier: verifier,
		model:    model,
	}
}

// generateText は、モードに対応するプロンプトを構築してテキストを生成する
// 共通ヘルパーです。
func (g *Generator) generateText(ctx context.Context, mode string, data prompts.TemplateData, req gemini.Request) (string, error) {
	prompt, err := g.builder.Build(mode, data)
	if err != nil {
		return "", fmt.Errorf("ステージ %q のプロンプト構築に失敗しました: %w", mode, err)
	}

	req.Model = g.model
	req.Prompt = prompt
	return g.client.GenerateContent(ctx, req)
}
