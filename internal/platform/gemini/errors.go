package gemini

import "errors"

// ErrInvalidOutput はモデル応答から有効なJSONを抽出できなかったことを示します。
// 呼び出し側はこのエラーを「解析失敗」として扱い、一般の内部エラーと区別します。
var ErrInvalidOutput = errors.New("model output did not contain valid JSON")
