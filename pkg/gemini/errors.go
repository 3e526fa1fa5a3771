package gemini

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// BillingRequiredError は、無課金キーの無料枠が 0 のまま呼び出された場合の
// 終端エラーです。リトライでは回復しないため、即座に呼び出し側へ伝播します。
type BillingRequiredError struct {
	Message string
}

func (e *BillingRequiredError) Error() string {
	return e.Message
}

// FormatError は、JSONスキーマ制約付きステージの応答がデコードできなかった
// 場合の終端エラーです。生テキストはログにのみ出力し、メッセージには含めません。
type FormatError struct {
	Stage string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ステージ %q の応答形式が不正です: %v", e.Stage, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ConfigurationError は、APIキーが解決できない等の設定不備を表します。
// 実行時のAPI障害とは区別され、リトライの対象外です。
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

const quotaFailureType = "type.googleapis.com/google.rpc.QuotaFailure"

// billingRequiredMessage はユーザーへの是正案内です。
const billingRequiredMessage = "この操作の無料枠クォータが 0 です。課金アカウントに紐づいたAPIキーを選択してください。"

// ClassifyError は、APIから返された生エラーを検査し、無料枠ゼロの
// RESOURCE_EXHAUSTED であれば BillingRequiredError を返します。
// それ以外（リトライで回復しうる一時障害）は nil を返します。
func ClassifyError(err error) *BillingRequiredError {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}
	if apiErr.Status != "RESOURCE_EXHAUSTED" {
		return nil
	}
	if hasZeroQuotaViolation(apiErr.Details, apiErr.Message) {
		return &BillingRequiredError{Message: billingRequiredMessage}
	}
	return nil
}

// hasZeroQuotaViolation は QuotaFailure 詳細の中に「無料枠メトリクスかつ
// limit: 0」を示す違反が含まれるかを判定します。エラー形状の検査を
// ネットワーク層から切り離した純関数です。
func hasZeroQuotaViolation(details []map[string]any, message string) bool {
	zeroLimit := strings.Contains(message, "limit: 0") ||
		strings.Contains(message, "Quota exceeded for metric")
	if !zeroLimit {
		return false
	}

	for _, detail := range details {
		if t, _ := detail["@type"].(string); t != quotaFailureType {
			continue
		}
		violations, ok := detail["violations"].([]any)
		if !ok {
			continue
		}
		for _, v := range violations {
			violation, ok := v.(map[string]any)
			if !ok {
				continue
			}
			metric, _ := violation["quotaMetric"].(string)
			if strings.Contains(metric, "_free_tier_requests") ||
				strings.Contains(metric, "_free_tier_input_token_count") {
				return true
			}
		}
	}
	return false
}
