// Package gemini はGoogle Gemini APIを使用したテキスト生成クライアントを提供します。
// スカウト文面のドラフト生成と、資料テキストからの構造化抽出の両方で使われます。
package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"

	// EnvKeyModel はモデル名を上書きする環境変数です。
	EnvKeyModel = "GEMINI_MODEL"
)

// Client は genai.Client の薄いラッパーです。
type Client struct {
	client *genai.Client
	model  string
}

// NewClient はGeminiクライアントの新しいインスタンスを生成します。
// 認証は genai 側の規約に従います（GEMINI_API_KEY またはADC）。
func NewClient(ctx context.Context) (*Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := os.Getenv(EnvKeyModel)
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model}, nil
}

// Generate はプロンプトからテキストを生成します。
// 生成は1回の同期呼び出しで、アプリケーション側でのリトライやストリーミングは行いません。
func (c *Client) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
