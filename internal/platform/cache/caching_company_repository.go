// Package cache はリポジトリインターフェースのキャッシュ実装を提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"scout_backend/internal/feature/company/domain/entity"
	"scout_backend/internal/feature/company/usecase"
)

// CachingCompanyRepository はCompanyRepositoryをRedisキャッシュでデコレートします。
// 企業プロファイルはスカウト生成のたびに読まれる一方、更新頻度が低いためキャッシュ効果が高い対象です。
type CachingCompanyRepository struct {
	inner     usecase.CompanyRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingCompanyRepositoryがCompanyRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CompanyRepository = (*CachingCompanyRepository)(nil)

// NewCachingCompanyRepository はCompanyRepositoryをRedisキャッシュでラップします。
// ttlが0以下の場合は5分、namespaceが空の場合は "company" を使用します。
func NewCachingCompanyRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CompanyRepository, namespace string) *CachingCompanyRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "company"
	}
	return &CachingCompanyRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID は企業プロファイルを取得します。キャッシュを先に確認し、ミス時はDBへフォールバックします。
func (c *CachingCompanyRepository) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	// Redis未設定時はキャッシュをバイパス
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) キャッシュ確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Company
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// 破損したキャッシュエントリを削除
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) DBへフォールバック
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) キャッシュに保存（ベストエフォート）
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Update は企業プロファイルを保存し、該当キャッシュエントリを無効化します。
func (c *CachingCompanyRepository) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	out, err := c.inner.Update(ctx, company)
	if err != nil {
		return nil, err
	}
	if c.rdb != nil {
		// 無効化失敗は致命的ではないので無視（TTLで回収される）
		_ = c.rdb.Del(ctx, c.cacheKey(company.ID)).Err()
	}
	return out, nil
}

// cacheKey は企業IDごとのキャッシュキーを生成します。
func (c *CachingCompanyRepository) cacheKey(id uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, id)
}
