// Package jsonfield は、歴史的に多重JSON文字列化されて保存されたカラム値を
// 正しい構造化データへ復元するためのユーティリティを提供します。
//
// 書き込み側の不変条件は「リスト/オブジェクト項目は常にちょうど一重のJSON文字列で
// 保存する」ことです。過去のバグでこの不変条件が破られた行が存在するため、
// 読み取り側は Normalize で何重の文字列化でも剥がせるようにしています。
package jsonfield

import (
	"encoding/json"
	"strings"
)

// Normalize は値の「型汚染」を剥ぎ取ります。
// 文字列の中にJSONが入っている場合、本物の配列/オブジェクトになるまで再帰的に剥がします。
// JSONとして解釈できない文字列は、純粋な自由記述テキストとしてそのまま返します。
// 成功するパースごとに必ず部分構造へ縮小するため、入力の実際のネスト深さで停止します。
func Normalize(v any) any {
	switch s := v.(type) {
	case nil:
		return []any{}
	case string:
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return []any{}
		}
		var parsed any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
			return s
		}
		return Normalize(parsed)
	default:
		return v
	}
}

// EnsureValid は保存・送信用に「純粋な配列またはオブジェクト」であることを保証します。
// Normalize の結果がコンテナでない場合（パースに失敗した裸の文字列など）は空配列に落とします。
func EnsureValid(v any) any {
	parsed := Normalize(v)
	switch parsed.(type) {
	case []any, map[string]any:
		return parsed
	default:
		return []any{}
	}
}

// Encode は EnsureValid を通した値をちょうど一重のJSON文字列にします。
// 書き込み経路はすべてこの関数を通すことで、再文字列化の重ね掛けを防ぎます。
func Encode(v any) string {
	b, err := json.Marshal(EnsureValid(v))
	if err != nil {
		// EnsureValid の戻り値はJSONデコード由来のコンテナのみなので、ここには到達しない
		return "[]"
	}
	return string(b)
}

// EncodeStrings は文字列リストを一重のJSON文字列にします。nil は空配列として扱います。
func EncodeStrings(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

// DecodeStrings は保存されたカラム値を文字列リストへ復元します。
// 多重エンコードを修復した上で、文字列要素のみを保存順で取り出します。
func DecodeStrings(stored string) []string {
	items, ok := EnsureValid(stored).([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
