package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shouni/go-recipe-seo-kit/internal/builder"
	"github.com/shouni/go-recipe-seo-kit/internal/config"
	"github.com/shouni/go-recipe-seo-kit/internal/history"
	"github.com/shouni/go-recipe-seo-kit/internal/runner"
	"github.com/shouni/go-recipe-seo-kit/pkg/domain"
	"github.com/shouni/go-recipe-seo-kit/pkg/gemini"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/remoteio/gcs"
)

// ArticleArtifact は article コマンドの成果物ファイルなのだ。後続の
// assets / social コマンドがこれを読み込んで作業を引き継ぎ、HistoryID を
// 手がかりに生成物を履歴エントリへ追記していく。
type ArticleArtifact struct {
	Components domain.ArticleComponents `json:"components"`
	Article    runner.ArticleResult     `json:"article"`
	HistoryID  string                   `json:"history_id,omitempty"`
}

// ExecuteAnalyze は、競合収集→分析→戦略→レシピ抽出のワークフローを
// 実行して結果をJSONで保存するのだ。
func ExecuteAnalyze(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	analyzeRunner, err := builder.BuildAnalyzeRunner(appCtx)
	if err != nil {
		return fmt.Errorf("AnalyzeRunnerの構築に失敗したのだ: %w", err)
	}

	result, runErr := analyzeRunner.Run(ctx)
	// 途中で失敗しても、完了済みのステージ結果は保存して引き継げるようにする
	outputPath := orDefault(cfg.Options.OutputFile, config.DefaultAnalysisFile)
	if result.Analysis != "" || runErr == nil {
		if err := saveJSON(ctx, appCtx, outputPath, result); err != nil {
			if runErr != nil {
				return errors.Join(reportFailure(runErr), err)
			}
			return err
		}
		slog.Info("分析結果を保存したのだ", "path", outputPath)
	}
	if runErr != nil {
		return reportFailure(runErr)
	}

	slog.Info("分析ワークフローが完了したのだ！", "keyword", result.Keyword, "category", result.Sections.Category)
	return nil
}

// ExecuteComponents は、保存済みの分析結果から記事コンポーネント一式を
// 生成して保存するのだ。
func ExecuteComponents(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	inputPath := orDefault(cfg.Options.InputFile, config.DefaultAnalysisFile)
	var analyzed runner.AnalyzeResult
	if err := loadJSON(ctx, appCtx, inputPath, &analyzed); err != nil {
		return err
	}
	if cfg.Options.Keyword != "" {
		analyzed.Keyword = cfg.Options.Keyword
	}

	componentsRunner := builder.BuildComponentsRunner(appCtx)
	components, runErr := componentsRunner.Run(ctx, analyzed)

	outputPath := orDefault(cfg.Options.OutputFile, config.DefaultComponentsFile)
	if err := saveJSON(ctx, appCtx, outputPath, components); err != nil {
		if runErr != nil {
			return errors.Join(reportFailure(runErr), err)
		}
		return err
	}
	if runErr != nil {
		return reportFailure(runErr)
	}

	slog.Info("記事コンポーネントを保存したのだ！", "path", outputPath)
	return nil
}

// ExecuteArticle は、コンポーネント一式から記事を生成（必要なら改訂）し、
// Markdown/HTMLで公開して履歴に積むのだ。
func ExecuteArticle(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	inputPath := orDefault(cfg.Options.InputFile, config.DefaultComponentsFile)
	var components domain.ArticleComponents
	if err := loadJSON(ctx, appCtx, inputPath, &components); err != nil {
		return err
	}

	articleRunner := builder.BuildArticleRunner(appCtx)
	result, err := articleRunner.Run(ctx, components, cfg.Options.Feedback, cfg.Options.Revise)
	if err != nil {
		return reportFailure(err)
	}
	if !result.Parsed.HasBody() {
		return fmt.Errorf("生成応答から記事本文を抽出できなかったのだ")
	}

	// 履歴への追加（採番されたIDは成果物に記録して後続工程へ渡す）
	store := builder.BuildHistoryStore(appCtx)
	id, err := store.Append(ctx, domain.SavedArticle{
		Title:      result.Parsed.Title,
		Keyword:    components.TargetKeyword,
		Content:    result.Raw,
		Components: components,
	})
	if err != nil {
		return err
	}

	// 成果物JSON（assets/socialコマンドの入力）
	artifact := ArticleArtifact{Components: components, Article: result, HistoryID: id}
	if err := saveJSON(ctx, appCtx, config.DefaultArticleFile, artifact); err != nil {
		return err
	}

	// Markdown/HTMLとして公開
	publishRunner := builder.BuildPublishRunner(appCtx)
	if err := publishRunner.PublishArticle(ctx, result.Parsed); err != nil {
		return err
	}

	slog.Info("記事ワークフローが完了したのだ！", "id", id, "title", result.Parsed.Title, "revised", result.Revised)
	return nil
}

// ExecuteAssets は、記事成果物から画像メタデータとPinterest素材を生成して
// 保存するのだ。
func ExecuteAssets(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	inputPath := orDefault(cfg.Options.InputFile, config.DefaultArticleFile)
	var artifact ArticleArtifact
	if err := loadJSON(ctx, appCtx, inputPath, &artifact); err != nil {
		return err
	}

	inspiration, err := loadInspirationImage(ctx, appCtx)
	if err != nil {
		return err
	}

	assetRunner := builder.BuildAssetRunner(appCtx)
	result, err := assetRunner.Run(ctx, artifact.Components, inspiration)
	if err != nil {
		return reportFailure(err)
	}

	// 記事タイトルが判明している場合は、記事に紐づくピン素材も生成する
	if title := artifact.Article.Parsed.Title; title != "" {
		content, err := assetRunner.RunPinsForArticle(ctx, artifact.Components, title)
		if err != nil {
			return reportFailure(err)
		}
		result.Pinterest.Pins = append(result.Pinterest.Pins, content.Pins...)
	}

	outputPath := orDefault(cfg.Options.OutputFile, config.DefaultAssetsFile)
	if err := saveJSON(ctx, appCtx, outputPath, result); err != nil {
		return err
	}

	// 元の記事の履歴エントリにもアセットを追記する
	if artifact.HistoryID != "" {
		store := builder.BuildHistoryStore(appCtx)
		err := store.Update(ctx, artifact.HistoryID, func(a *domain.SavedArticle) {
			a.Images = &result.Images
			a.Pinterest = &result.Pinterest
		})
		if err != nil {
			slog.Warn("履歴へのアセット反映に失敗したのだ", "id", artifact.HistoryID, "error", err)
		}
	}

	slog.Info("アセット生成が完了したのだ！", "path", outputPath, "pins", len(result.Pinterest.Pins), "step_images", len(result.Images.StepImages))
	return nil
}

// ExecuteSocial は、記事成果物からYouTube台本とReels台本を生成して
// 保存するのだ。
func ExecuteSocial(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	inputPath := orDefault(cfg.Options.InputFile, config.DefaultArticleFile)
	var artifact ArticleArtifact
	if err := loadJSON(ctx, appCtx, inputPath, &artifact); err != nil {
		return err
	}

	socialRunner := builder.BuildSocialRunner(appCtx)
	result, err := socialRunner.Run(ctx, artifact.Article.Parsed, artifact.Components)
	if err != nil {
		return reportFailure(err)
	}

	if err := appCtx.Writer.Write(ctx, config.DefaultYouTubeFile, strings.NewReader(result.YouTubeScript), "text/markdown"); err != nil {
		return fmt.Errorf("YouTube台本の保存に失敗したのだ: %w", err)
	}
	if err := appCtx.Writer.Write(ctx, config.DefaultReelsFile, strings.NewReader(result.ReelsScript), "text/markdown"); err != nil {
		return fmt.Errorf("Reels台本の保存に失敗したのだ: %w", err)
	}

	// 元の記事の履歴エントリにも台本を追記する
	if artifact.HistoryID != "" {
		store := builder.BuildHistoryStore(appCtx)
		err := store.Update(ctx, artifact.HistoryID, func(a *domain.SavedArticle) {
			a.YouTube = result.YouTubeScript
			a.ReelsScript = result.ReelsScript
		})
		if err != nil {
			slog.Warn("履歴への台本反映に失敗したのだ", "id", artifact.HistoryID, "error", err)
		}
	}

	slog.Info("動画台本の生成が完了したのだ！", "youtube", config.DefaultYouTubeFile, "reels", config.DefaultReelsFile)
	return nil
}

// ExecuteImages は、生成済みの画像プロンプト一式をレンダリングして
// 保存するのだ。
func ExecuteImages(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	inputPath := orDefault(cfg.Options.InputFile, config.DefaultAssetsFile)
	var assets runner.AssetResult
	if err := loadJSON(ctx, appCtx, inputPath, &assets); err != nil {
		return err
	}

	imageRunner := builder.BuildImageRunner(appCtx)
	images, err := imageRunner.Run(ctx, assets.Images, assets.Pinterest.Pins)
	if err != nil {
		return reportFailure(err)
	}

	publishRunner := builder.BuildPublishRunner(appCtx)
	if err := publishRunner.PublishImages(ctx, images); err != nil {
		return err
	}

	slog.Info("画像生成と保存が完了したのだ！", "total", len(images))
	return nil
}

// ExecuteHistoryList は、保存済み記事の一覧を新しい順に表示するのだ。
func ExecuteHistoryList(ctx context.Context, cfg *config.Config) error {
	store, err := openHistoryStore(ctx, cfg)
	if err != nil {
		return err
	}

	articles, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		slog.Info("保存済みの記事はまだ無いのだ")
		return nil
	}

	for _, a := range articles {
		created := time.UnixMilli(a.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(os.Stdout, "%s  %s  [%s] %s\n", a.ID, created, a.Keyword, a.Title)
	}
	return nil
}

// ExecuteHistoryShow は、指定IDの保存済み記事の本文を表示するのだ。
func ExecuteHistoryShow(ctx context.Context, cfg *config.Config, id string) error {
	store, err := openHistoryStore(ctx, cfg)
	if err != nil {
		return err
	}

	article, err := store.Find(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, article.Content)
	return nil
}

// ExecuteHistoryDelete は、指定IDの記事を履歴から削除するのだ。
func ExecuteHistoryDelete(ctx context.Context, cfg *config.Config, id string) error {
	store, err := openHistoryStore(ctx, cfg)
	if err != nil {
		return err
	}

	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("履歴から記事を削除したのだ", "id", id)
	return nil
}

// openHistoryStore は履歴操作用のストアだけを初期化するのだ。
// AIクライアントは不要なので、ストレージ層のみをセットアップする。
func openHistoryStore(ctx context.Context, cfg *config.Config) (*history.Store, error) {
	gcsFactory, err := gcs.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	path := orDefault(cfg.Options.HistoryFile, config.DefaultHistoryFile)
	return history.NewStore(reader, writer, path), nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	httpClient := httpkit.New(builder.HTTPTimeout(cfg.Options))

	aiClient, err := builder.InitializeAIClient(ctx, cfg, httpClient)
	if err != nil {
		return nil, reportFailure(fmt.Errorf("failed to create ai client: %w", err))
	}

	gcsFactory, err := gcs.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	model := cfg.Options.AIModel
	if model == "" {
		model = cfg.GeminiModel
	}
	gen, err := builder.InitializeGenerator(aiClient, httpClient, model)
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer, gen)
	return &appCtx, nil
}

// loadInspirationImage は --inspiration-image 指定時に参考画像を読み込むのだ。
func loadInspirationImage(ctx context.Context, appCtx *builder.AppContext) (*gemini.InlineData, error) {
	path := appCtx.Options.InspirationImage
	if path == "" {
		return nil, nil
	}

	rc, err := appCtx.Reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("参考画像 '%s' を開けなかったのだ: %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("参考画像の読み込みに失敗したのだ: %w", err)
	}
	return &gemini.InlineData{MIMEType: mimeTypeForImage(path), Data: data}, nil
}

// mimeTypeForImage は拡張子から画像のMIMEタイプを推定するのだ。
func mimeTypeForImage(path string) string {
	switch {
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// saveJSON は成果物を整形済みJSONとして保存するのだ。
func saveJSON(ctx context.Context, appCtx *builder.AppContext, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("成果物のエンコードに失敗したのだ: %w", err)
	}
	if err := appCtx.Writer.Write(ctx, path, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("成果物 '%s' の保存に失敗したのだ: %w", path, err)
	}
	return nil
}

// loadJSON は前段コマンドの成果物ファイルを読み込むのだ。
func loadJSON(ctx context.Context, appCtx *builder.AppContext, path string, v any) error {
	rc, err := appCtx.Reader.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("入力ファイル '%s' を開けなかったのだ。前段のコマンドを先に実行するのだ: %w", path, err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("入力ファイル '%s' のデコードに失敗したのだ: %w", path, err)
	}
	return nil
}

// reportFailure はワークフロー失敗の種別をログに記録して返すのだ。
// 課金が必要なエラーは是正方法が明確なので、目立つ形で案内する。
func reportFailure(err error) error {
	var billing *gemini.BillingRequiredError
	if errors.As(err, &billing) {
		slog.Error("無料枠クォータが0のため処理を継続できないのだ。課金アカウントのAPIキーに切り替えるのだ", "billing_required", true)
		return err
	}

	var configErr *gemini.ConfigurationError
	if errors.As(err, &configErr) {
		slog.Error("設定に不備があるのだ", "reason", configErr.Reason)
		return err
	}

	var formatErr *gemini.FormatError
	if errors.As(err, &formatErr) {
		slog.Error("AI応答の形式が不正だったのだ", "stage", formatErr.Stage)
	}
	return err
}

// orDefault は値が空のときにデフォルトへフォールバックするのだ。
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
