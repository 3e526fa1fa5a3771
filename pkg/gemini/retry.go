package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// リトライ設定のデフォルト値です。
const (
	DefaultRetryAttempts = 3
	DefaultRetryBase     = 2 * time.Second
)

// RetryConfig は、1回のネットワーク呼び出しに対する試行回数と
// 指数バックオフの基準間隔を保持します。
// 待機時間は試行 i（0始まり）の失敗後に BaseDelay * 2^i となります。
type RetryConfig struct {
	Attempts  int
	BaseDelay time.Duration
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.Attempts <= 0 {
		c.Attempts = DefaultRetryAttempts
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultRetryBase
	}
	return c
}

// Retry は、リクエストを発行する操作を最大 Attempts 回実行します。
// 失敗のたびにエラーを分類し、無料枠ゼロの課金エラーであれば即座に
// BillingRequiredError として打ち切ります。それ以外は指数バックオフで
// 再試行し、全試行が尽きたら最後のエラーをラップして返します。
func Retry[T any](ctx context.Context, cfg RetryConfig, op func() (T, error)) (T, error) {
	cfg = cfg.withDefaults()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = cfg.BaseDelay
	policy.Multiplier = 2.0
	policy.RandomizationFactor = 0
	policy.MaxInterval = cfg.BaseDelay << uint(cfg.Attempts)
	policy.MaxElapsedTime = 0

	attempt := 0
	operation := func() (T, error) {
		v, err := op()
		if err == nil {
			return v, nil
		}
		if billing := ClassifyError(err); billing != nil {
			// 課金エラーはリトライしても自己回復しないため終端扱いにします
			return v, backoff.Permanent(error(billing))
		}
		return v, err
	}

	notify := func(err error, wait time.Duration) {
		slog.Warn("Gemini APIリクエストが失敗しました。再試行します",
			"attempt", attempt+1,
			"max_attempts", cfg.Attempts,
			"wait", wait,
			"error", err,
		)
		attempt++
	}

	result, err := backoff.RetryNotifyWithData(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(cfg.Attempts-1)), ctx),
		notify,
	)
	if err != nil {
		var billing *BillingRequiredError
		if errors.As(err, &billing) {
			return result, billing
		}
		// notify は次の待機の前にしか呼ばれないため、最終試行の失敗はここで記録します
		slog.Warn("Gemini APIリクエストが失敗しました。試行回数を使い切りました",
			"attempt", attempt+1,
			"max_attempts", cfg.Attempts,
			"error", err,
		)
		return result, fmt.Errorf("Gemini APIの呼び出しに%d回失敗しました。最後のエラー: %w", cfg.Attempts, err)
	}
	return result, nil
}
