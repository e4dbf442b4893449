package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"curriculo-api/internal/core/cache"
	"curriculo-api/internal/domain"
)

// Store 单一实体类型的持久化（由 repo.Repo 实现）
type Store[T any] interface {
	Kind() domain.Kind
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, m *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, ownerID *uint) ([]T, error)
	Update(ctx context.Context, id uint, cols map[string]any) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// Owners 用于子记录创建/列表前确认 Person 存在
type Owners interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// Input 创建请求体，转换成待插入的记录
type Input[T any] interface {
	Record(ownerID uint) T
}

// Patch 更新请求体，只返回显式提供的列
type Patch interface {
	Columns() map[string]any
}

type Options struct {
	Cache *cache.Cache  // 为 nil 时不走缓存
	TTL   time.Duration // 缓存时长
	Log   *zap.Logger
}

// Resource 通用 CRUD + 归属校验，四种实体共用
type Resource[T any, I Input[T], P Patch] struct {
	store  Store[T]
	owners Owners
	v      *validator.Validate
	cache  *cache.Cache
	byID   *cache.Namespace[T] // 为 nil 时不走缓存
	log    *zap.Logger
}

func NewResource[T any, I Input[T], P Patch](store Store[T], owners Owners, opts Options) *Resource[T, I, P] {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	r := &Resource[T, I, P]{
		store:  store,
		owners: owners,
		v:      newValidator(),
		cache:  opts.Cache,
		log:    opts.Log.With(zap.String("kind", store.Kind().Name)),
	}
	if opts.Cache != nil {
		r.byID = cache.NewNamespace[T](opts.Cache, store.Kind().Name, opts.TTL)
	}
	return r
}

func (r *Resource[T, I, P]) Kind() domain.Kind { return r.store.Kind() }

// Create 子类型先校验 Person 存在，再校验必填字段，最后插入
func (r *Resource[T, I, P]) Create(ctx context.Context, ownerID uint, in I) (*T, error) {
	if r.Kind().Owned {
		if err := r.ensureOwner(ctx, ownerID); err != nil {
			return nil, err
		}
	}
	if err := checkRequired(r.v, in); err != nil {
		return nil, err
	}
	m := in.Record(ownerID)
	if err := r.store.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAll 仅根实体（Person）
func (r *Resource[T, I, P]) ListAll(ctx context.Context) ([]T, error) {
	return r.store.List(ctx, nil)
}

func (r *Resource[T, I, P]) ListByOwner(ctx context.Context, ownerID uint) ([]T, error) {
	if !r.Kind().Owned {
		return nil, domain.InvalidInput(r.Kind().Label + " has no owner")
	}
	if err := r.ensureOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return r.store.List(ctx, &ownerID)
}

func (r *Resource[T, I, P]) Get(ctx context.Context, id uint) (*T, error) {
	if r.byID == nil {
		return r.store.FindByID(ctx, id)
	}
	return r.byID.Get(ctx, id, func(ctx context.Context) (*T, error) {
		return r.store.FindByID(ctx, id)
	})
}

// Update 稀疏补丁：未提供或为 null 的字段保持原值；不重新校验必填
func (r *Resource[T, I, P]) Update(ctx context.Context, id uint, p P) (*T, error) {
	m, err := r.store.Update(ctx, id, p.Columns())
	if err != nil {
		return nil, err
	}
	r.evict(ctx, id)
	return m, nil
}

func (r *Resource[T, I, P]) Delete(ctx context.Context, id uint) (uint, error) {
	if err := r.store.Delete(ctx, id); err != nil {
		return 0, err
	}
	r.evict(ctx, id)
	// 级联删除的子记录没有逐条加载，按命名空间整体失效
	if r.cache != nil {
		for _, ns := range r.Kind().Dependents {
			if err := r.cache.FlushNamespace(ctx, ns); err != nil {
				r.log.Warn("cache flush failed", zap.String("namespace", ns), zap.Error(err))
			}
		}
	}
	return id, nil
}

func (r *Resource[T, I, P]) ensureOwner(ctx context.Context, ownerID uint) error {
	ok, err := r.owners.Exists(ctx, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(domain.PersonKind.Label)
	}
	return nil
}

func (r *Resource[T, I, P]) evict(ctx context.Context, id uint) {
	if r.byID == nil {
		return
	}
	if err := r.byID.Evict(ctx, id); err != nil {
		r.log.Warn("cache evict failed", zap.Uint("id", id), zap.Error(err))
	}
}
