package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/shouni/go-recipe-seo-kit/internal/config"
	"github.com/shouni/go-recipe-seo-kit/pkg/domain"

	"github.com/shouni/go-remote-io/remoteio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// PublishRunner は、生成された記事と画像をローカルまたはGCSへ保存する
// 構造体なのだ。記事はMarkdownとHTMLの両形式で書き出す。
type PublishRunner struct {
	options  config.GenerateOptions
	writer   remoteio.OutputWriter
	markdown goldmark.Markdown
}

// NewPublishRunner は PublishRunner の新しいインスタンスを生成して返すのだ。
func NewPublishRunner(options config.GenerateOptions, writer remoteio.OutputWriter) *PublishRunner {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	return &PublishRunner{
		options:  options,
		writer:   writer,
		markdown: md,
	}
}

// PublishArticle は解析済み記事をMarkdownとHTMLで保存するのだ。
func (pr *PublishRunner) PublishArticle(ctx context.Context, article domain.ParsedArticle) error {
	if !article.HasBody() {
		return fmt.Errorf("記事本文が空のため保存できないのだ")
	}

	outputPath := pr.options.OutputFile
	if outputPath == "" {
		outputPath = config.DefaultLocalFile
	}

	markdown := pr.composeMarkdown(article)
	if err := pr.writer.Write(ctx, outputPath, strings.NewReader(markdown), "text/markdown"); err != nil {
		return fmt.Errorf("Markdownの保存に失敗したのだ: %w", err)
	}

	var htmlBuf bytes.Buffer
	if err := pr.markdown.Convert([]byte(markdown), &htmlBuf); err != nil {
		return fmt.Errorf("HTMLへの変換に失敗したのだ: %w", err)
	}
	htmlPath := strings.TrimSuffix(outputPath, path.Ext(outputPath)) + ".html"
	if err := pr.writer.Write(ctx, htmlPath, &htmlBuf, "text/html"); err != nil {
		return fmt.Errorf("HTMLの保存に失敗したのだ: %w", err)
	}

	slog.Info("記事を保存したのだ！", "markdown", outputPath, "html", htmlPath)
	return nil
}

// PublishImages は生成済み画像をすべて保存するのだ。
func (pr *PublishRunner) PublishImages(ctx context.Context, images []domain.GeneratedImage) error {
	dir := pr.options.OutputImageDir
	if dir == "" {
		dir = config.DefaultLocalImageDir
	}

	for _, img := range images {
		imagePath := path.Join(dir, img.Name+".jpg")
		if err := pr.writer.Write(ctx, imagePath, bytes.NewReader(img.Data), img.MimeType); err != nil {
			return fmt.Errorf("画像 '%s' の保存に失敗したのだ: %w", img.Name, err)
		}
		slog.Info("画像を保存したのだ", "path", imagePath, "bytes", len(img.Data))
	}
	return nil
}

// composeMarkdown は本文に続けてSEOメタ情報のセクションを連結するのだ。
func (pr *PublishRunner) composeMarkdown(article domain.ParsedArticle) string {
	var sb strings.Builder
	if article.Title != "" {
		sb.WriteString("# " + article.Title + "\n\n")
	}
	sb.WriteString(article.Body)
	sb.WriteString("\n")

	if len(article.TitleTags) > 0 {
		sb.WriteString("\n## Title Tags\n\n")
		for _, tag := range article.TitleTags {
			sb.WriteString("- " + tag + "\n")
		}
	}
	if len(article.MetaDescriptions) > 0 {
		sb.WriteString("\n## Meta Descriptions\n\n")
		for _, desc := range article.MetaDescriptions {
			sb.WriteString("- " + desc + "\n")
		}
	}
	if article.RecipeRecap != "" {
		sb.WriteString("\n## Recipe Recap\n\n")
		sb.WriteString(article.RecipeRecap + "\n")
	}
	if article.Category != "" {
		sb.WriteString("\n## Category\n\n")
		sb.WriteString(article.Category + "\n")
	}
	if article.RecipeJSON != "" {
		sb.WriteString("\n## Recipe JSON\n\n```json\n")
		sb.WriteString(article.RecipeJSON)
		sb.WriteString("\n```\n")
	}
	return sb.String()
}
