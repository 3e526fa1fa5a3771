package gemini

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestClassifyError(t *testing.T) {
	t.Run("無料枠ゼロのRESOURCE_EXHAUSTEDを検出すること", func(t *testing.T) {
		if got := ClassifyError(newZeroQuotaError()); got == nil {
			t.Error("BillingRequiredError が返されませんでした")
		}
	})

	t.Run("ラップされたAPIエラーも検出すること", func(t *testing.T) {
		wrapped := fmt.Errorf("ステージ実行中: %w", newZeroQuotaError())
		if got := ClassifyError(wrapped); got == nil {
			t.Error("ラップされたエラーから課金状態を検出できませんでした")
		}
	})

	t.Run("一時障害は分類されないこと", func(t *testing.T) {
		cases := []error{
			errors.New("connection reset"),
			genai.APIError{Code: 500, Status: "INTERNAL", Message: "server error"},
			genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "limit: 100 exceeded"},
		}
		for _, err := range cases {
			if got := ClassifyError(err); got != nil {
				t.Errorf("誤って課金エラーに分類されました: %v", err)
			}
		}
	})

	t.Run("クォータ詳細が無料枠以外なら分類されないこと", func(t *testing.T) {
		err := genai.APIError{
			Code:    429,
			Status:  "RESOURCE_EXHAUSTED",
			Message: "Quota exceeded for metric ... limit: 0",
			Details: []map[string]any{
				{
					"@type": quotaFailureType,
					"violations": []any{
						map[string]any{"quotaMetric": "paid_tier_requests"},
					},
				},
			},
		}
		if got := ClassifyError(err); got != nil {
			t.Error("無料枠以外のメトリクスで課金エラーに分類されました")
		}
	})
}

func TestHasZeroQuotaViolation(t *testing.T) {
	details := []map[string]any{
		{
			"@type": quotaFailureType,
			"violations": []any{
				map[string]any{"quotaMetric": "x_free_tier_input_token_count"},
			},
		},
	}

	t.Run("メッセージに limit: 0 が含まれる場合", func(t *testing.T) {
		if !hasZeroQuotaViolation(details, "... limit: 0 ...") {
			t.Error("検出されませんでした")
		}
	})

	t.Run("メッセージ条件を満たさない場合", func(t *testing.T) {
		if hasZeroQuotaViolation(details, "rate limited, retry later") {
			t.Error("誤検出されました")
		}
	})

	t.Run("詳細が空の場合", func(t *testing.T) {
		if hasZeroQuotaViolation(nil, "limit: 0") {
			t.Error("詳細なしで誤検出されました")
		}
	})
}
