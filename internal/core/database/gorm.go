package database

import (
	"net/url"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"

	"curriculo-api/internal/core/config"
)

type Opts struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
	SlowThreshold      time.Duration
	Writer             logger.Writer // gorm 日志输出，nil 时使用 gorm 默认（stdout）
}

var ErrUnsupportedDriver = errors.New("unsupported db driver")

// FromConfig 把 db 配置段转换为连接参数
func FromConfig(c config.DB, w logger.Writer) Opts {
	return Opts{
		Driver:             c.Driver,
		DSN:                c.DSN,
		Username:           c.Username,
		Password:           c.Password,
		MaxOpenConns:       c.MaxOpenConns,
		MaxIdleConns:       c.MaxIdleConns,
		ConnMaxLifetimeMin: c.ConnMaxLifetimeMin,
		LogLevel:           c.LogLevel,
		Writer:             w,
	}
}

// Dialector 按驱动构造 gorm 方言；mysql 会先规范化 DSN
func Dialector(o Opts) (gorm.Dialector, error) {
	switch o.Driver {
	case "postgres":
		return postgres.Open(o.DSN), nil
	case "mysql":
		return mysql.Open(normalizeMySQLDSN(o.DSN, o.Username, o.Password)), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedDriver, "driver %q", o.Driver)
	}
}

func NewGorm(o Opts) (*gorm.DB, error) {
	dial, err := Dialector(o)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, &gorm.Config{Logger: newLogger(o)})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", o.Driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "sql handle")
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	db = db.
		Session(&gorm.Session{
			PrepareStmt:            true, // 预编译缓存，提高 QPS
			CreateBatchSize:        200,  // 批量写
			SkipDefaultTransaction: true, // 只在需要时手动开 Tx
		})
	return db, nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newLogger(o Opts) logger.Interface {
	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	if o.Writer == nil {
		return logger.Default.LogMode(lvl)
	}
	slow := o.SlowThreshold
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return logger.New(o.Writer, logger.Config{
		SlowThreshold:             slow,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true, // 404 属于正常业务结果
		Colorful:                  false,
	})
}

// MaskDSN 打印用：隐藏 DSN 中的密码
func MaskDSN(driver, dsn string) string {
	if driver == "mysql" {
		dsn = normalizeMySQLDSN(dsn, "", "")
		if at := strings.Index(dsn, "@"); at > 0 {
			if colon := strings.Index(dsn[:at], ":"); colon > 0 {
				return dsn[:colon+1] + "****" + dsn[at:]
			}
		}
		return dsn
	}
	// postgres: key=value 形式或 URL 形式
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "****")
		}
		return u.String()
	}
	parts := strings.Fields(dsn)
	for i, p := range parts {
		if strings.HasPrefix(p, "password=") {
			parts[i] = "password=****"
		}
	}
	return strings.Join(parts, " ")
}

// normalizeMySQLDSN 把 JDBC/Navicat 风格的 mysql://host:port/db?... 转成 go-sql-driver DSN；
// 原生 DSN（user:pass@tcp(...)/db）原样返回
func normalizeMySQLDSN(input, userOverride, passOverride string) string {
	in := strings.TrimPrefix(strings.TrimSpace(input), "jdbc:")
	if !strings.HasPrefix(in, "mysql://") {
		return in
	}
	u, err := url.Parse(in)
	if err != nil {
		return in // 交给驱动报错
	}

	cfg := gomysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.ParseTime = true // DATE 列扫描为 time.Time

	q := u.Query()
	cfg.User = firstNonEmpty(userOverride, q.Get("user"), u.User.Username())
	pass, _ := u.User.Password()
	cfg.Passwd = firstNonEmpty(passOverride, q.Get("password"), pass)

	switch strings.ToLower(q.Get("useSSL")) {
	case "":
	case "true", "1":
		cfg.TLSConfig = "true"
	case "skip-verify", "preferred":
		cfg.TLSConfig = strings.ToLower(q.Get("useSSL"))
	default:
		cfg.TLSConfig = "false"
	}
	if tz := q.Get("serverTimezone"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			cfg.Loc = loc
		}
	}
	if v := q.Get("parseTime"); v != "" {
		cfg.ParseTime = v == "true" || v == "1"
	}

	charset := firstNonEmpty(q.Get("charset"), q.Get("characterEncoding"), "utf8mb4")
	cfg.Params = map[string]string{"charset": charset}
	// JDBC 专用参数，驱动不认识
	for _, k := range []string{"user", "password", "useSSL", "serverTimezone", "parseTime",
		"charset", "characterEncoding", "useUnicode", "zeroDateTimeBehavior"} {
		q.Del(k)
	}
	for k := range q {
		cfg.Params[k] = q.Get(k)
	}
	return cfg.FormatDSN()
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
