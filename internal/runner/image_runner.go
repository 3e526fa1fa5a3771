package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-recipe-seo-kit/pkg/domain"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// renderTask は1枚分のレンダリング指示なのだ。
type renderTask struct {
	name        string
	prompt      string
	aspectRatio string
}

// ImageRunner は、生成済みの画像プロンプト一式を画像エンドポイントへ
// 並列投入してレンダリングする構造体なのだ。役割ごとのアスペクト比
// （アイキャッチ 16:9、材料・手順 3:4、ピン 9:16）はここで固定する。
type ImageRunner struct {
	generator ImageGenerator
	model     string
	interval  time.Duration
}

// NewImageRunner は ImageRunner の新しいインスタンスを生成して返すのだ。
func NewImageRunner(generator ImageGenerator, model string, interval time.Duration) *ImageRunner {
	return &ImageRunner{
		generator: generator,
		model:     model,
		interval:  interval,
	}
}

// Run は並列処理を用いて全役割の画像を生成するのだ。1枚でも失敗したら
// 全体を失敗として扱い、コンテキストの取り消しで残りも打ち切られる。
func (ir *ImageRunner) Run(ctx context.Context, details domain.AllImageDetails, pins []domain.PinterestPinDetails) ([]domain.GeneratedImage, error) {
	tasks := buildRenderTasks(details, pins)
	if len(tasks) == 0 {
		return nil, fmt.Errorf("レンダリング対象の画像プロンプトがないのだ")
	}

	images := make([]domain.GeneratedImage, len(tasks))
	eg, egCtx := errgroup.WithContext(ctx)

	// Burst 2 により、開始直後に2枚までは同時にリクエストを開始できるのだ
	limiter := rate.NewLimiter(rate.Every(ir.interval), 2)
	slog.Info("並列画像生成を開始するのだ", "count", len(tasks), "interval", ir.interval)

	for i, task := range tasks {
		i, task := i, task // ゴルーチンのクロージャ対策なのだ

		eg.Go(func() error {
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}

			slog.Info("画像を生成中...", "name", task.name, "aspect_ratio", task.aspectRatio)
			data, err := ir.generator.GenerateImage(egCtx, ir.model, task.prompt, task.aspectRatio)
			if err != nil {
				slog.Error("画像生成に失敗したのだ", "name", task.name, "error", err)
				return fmt.Errorf("画像 '%s' の生成に失敗したのだ: %w", task.name, err)
			}

			images[i] = domain.GeneratedImage{
				Name:     task.name,
				Data:     data,
				MimeType: "image/jpeg",
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slog.Info("すべての画像が正常に生成されたのだ", "total", len(images))
	return images, nil
}

// buildRenderTasks は役割ごとの固定アスペクト比でタスク一覧を組み立てるのだ。
func buildRenderTasks(details domain.AllImageDetails, pins []domain.PinterestPinDetails) []renderTask {
	var tasks []renderTask
	if details.FeaturedImage.Prompt != "" {
		tasks = append(tasks, renderTask{
			name:        "featured",
			prompt:      details.FeaturedImage.Prompt,
			aspectRatio: domain.AspectRatioWide,
		})
	}
	if details.IngredientsImage.Prompt != "" {
		tasks = append(tasks, renderTask{
			name:        "ingredients",
			prompt:      details.IngredientsImage.Prompt,
			aspectRatio: domain.AspectRatioPortrait,
		})
	}
	for i, step := range details.StepImages {
		if step.Prompt == "" {
			continue
		}
		tasks = append(tasks, renderTask{
			name:        fmt.Sprintf("step-%d", i+1),
			prompt:      step.Prompt,
			aspectRatio: domain.AspectRatioPortrait,
		})
	}
	for i, pin := range pins {
		if pin.ImageGuidance == "" {
			continue
		}
		tasks = append(tasks, renderTask{
			name:        fmt.Sprintf("pin-%d", i+1),
			prompt:      pin.ImageGuidance,
			aspectRatio: domain.AspectRatioVertical,
		})
	}
	return tasks
}
