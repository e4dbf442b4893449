package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"curriculo-api/internal/domain"
)

// 各驱动的约束冲突错误码
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	mysqlDupEntry         = 1062
	mysqlNoReferencedRow  = 1452
)

// translate 在仓储边界把底层存储错误归类为 domain 错误
func translate(k domain.Kind, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return domain.Timeout(op+" cancelled", err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFound(k.Label)
	case isDupKey(err):
		what := k.Unique
		if what == "" {
			what = k.Label
		}
		return domain.Conflict("duplicate " + what)
	case isFKViolation(err):
		return domain.NotFound(domain.PersonKind.Label)
	default:
		var de *domain.Error
		if errors.As(err, &de) {
			return err
		}
		return domain.StoreFailure(op+" failed", pkgerrors.WithStack(err))
	}
}

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDupEntry
	}
	// sqlite 等其它驱动按错误文本兜底
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

func isFKViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoReferencedRow
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
