package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"curriculo-api/internal/domain"
)

// Repo 按 Kind 参数化的通用 gorm 仓储；所有返回的错误都已归类为 domain.Error
type Repo[T any] struct {
	db   *gorm.DB
	kind domain.Kind
}

func New[T any](db *gorm.DB, kind domain.Kind) *Repo[T] {
	return &Repo[T]{db: db, kind: kind}
}

func (r *Repo[T]) Kind() domain.Kind { return r.kind }

func (r *Repo[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Limit(1).Count(&n).Error
	if err != nil {
		return false, translate(r.kind, "check "+r.kind.Label, err)
	}
	return n > 0, nil
}

func (r *Repo[T]) Create(ctx context.Context, m *T) error {
	return translate(r.kind, "create "+r.kind.Label, r.db.WithContext(ctx).Create(m).Error)
}

func (r *Repo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var m T
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(r.kind, "get "+r.kind.Label, err)
	}
	return &m, nil
}

// List ownerID 为 nil 时列出全部
func (r *Repo[T]) List(ctx context.Context, ownerID *uint) ([]T, error) {
	items := make([]T, 0)
	q := r.db.WithContext(ctx).Model(new(T))
	if ownerID != nil {
		q = q.Where(clause.Eq{Column: clause.Column{Name: domain.OwnerColumn}, Value: *ownerID})
	}
	if r.kind.OrderBy != "" {
		q = q.Order(r.kind.OrderBy)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, translate(r.kind, "list "+r.kind.Label, err)
	}
	return items, nil
}

// Update 只更新 cols 中出现的列（稀疏补丁），返回更新后的完整记录。
// mysql 在值未变化时 RowsAffected 为 0，因此存在性以回读为准。
func (r *Repo[T]) Update(ctx context.Context, id uint, cols map[string]any) (*T, error) {
	if len(cols) > 0 {
		err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return nil, translate(r.kind, "update "+r.kind.Label, err)
		}
	}
	return r.FindByID(ctx, id)
}

// Delete 删除记录，并在同一事务里清理 Dependents 子表
func (r *Repo[T]) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		for _, table := range r.kind.Dependents {
			if err := tx.Exec("DELETE FROM ? WHERE ? = ?",
				clause.Table{Name: table}, clause.Column{Name: domain.OwnerColumn}, id).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translate(r.kind, "delete "+r.kind.Label, err)
}

// Ping 数据库连通性检查
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return domain.StoreFailure("database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return domain.StoreFailure("database unreachable", err)
	}
	return nil
}

// AutoMigrate 建表/补列/建索引
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return domain.StoreFailure("automigrate", err)
	}
	return nil
}
