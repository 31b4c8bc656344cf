// Package usecase はcompanyフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrCompanyNotFound is returned when the caller's company row is absent.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrEmptyText is returned when an analysis request carries no text.
	ErrEmptyText = errors.New("text is required")
)
