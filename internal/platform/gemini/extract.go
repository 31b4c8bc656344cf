package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON はモデルの生テキスト出力から型Tの値を抽出します。
// Markdownコードフェンスや前後の解説文が混ざっていても、最初のバランスした
// JSONオブジェクト/配列を探してパースします。
// 有効なJSONが見つからない場合は ErrInvalidOutput を返します。
func ExtractJSON[T any](raw string) (T, error) {
	var zero T

	cleaned := stripCodeFences(raw)
	block := extractJSONBlock(cleaned)
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON block found", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return result, nil
}

// stripCodeFences はMarkdownコードフェンス（```json ... ``` または ``` ... ```）を除去します。
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// extractJSONBlock は最初のバランスした { ... } または [ ... ] ブロックを探します。
// 文字列リテラル内の括弧と引用符のエスケープを考慮します。
func extractJSONBlock(s string) string {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}
	open := s[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
