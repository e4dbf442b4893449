package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"curriculo-api/internal/core/auth"
	"curriculo-api/internal/core/server"
	"curriculo-api/internal/domain"
	"curriculo-api/internal/service"
	"curriculo-api/internal/transport/http/ez"
	"curriculo-api/internal/transport/http/handler"
	mdw "curriculo-api/internal/transport/http/middleware"
)

type Limits struct {
	RPS           float64
	Burst         int
	PerIPRPS      float64 // 0 表示不按 IP 限速
	PerIPBurst    int
	MaxConcurrent int64
	MaxBodyBytes  int64
	Timeout       time.Duration
}

func (l Limits) withDefaults() Limits {
	if l.RPS <= 0 {
		l.RPS = 200
	}
	if l.Burst <= 0 {
		l.Burst = 400
	}
	if l.MaxConcurrent <= 0 {
		l.MaxConcurrent = 300
	}
	if l.MaxBodyBytes <= 0 {
		l.MaxBodyBytes = 1 << 20
	}
	if l.Timeout <= 0 {
		l.Timeout = 10 * time.Second
	}
	return l
}

type Deps struct {
	DB       *gorm.DB
	Services *service.Set
	JWT      *auth.JWTer // 非 nil 时写操作需要 editor/admin token
	Limits   Limits
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	lim := d.Limits.withDefaults()
	r := server.NewRouter(l, mdw.Recovery(l))

	// 中间件
	chain := []gin.HandlerFunc{
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(lim.RPS), lim.Burst),
	}
	if lim.PerIPRPS > 0 {
		chain = append(chain, mdw.RateLimitPerIP(rate.Limit(lim.PerIPRPS), max(1, lim.PerIPBurst)))
	}
	chain = append(chain,
		mdw.ConcurrencyLimit(lim.MaxConcurrent),
		mdw.MaxBodyBytes(lim.MaxBodyBytes),
		mdw.Timeout(lim.Timeout),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)
	r.Use(chain...)

	// 健康检查 / 指标
	h := handler.Health{DB: d.DB}
	r.GET("/", h.Root)
	r.GET("/health", h.Live)
	r.GET("/db-status", h.DBStatus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	var guard gin.HandlerFunc
	if d.JWT != nil {
		guard = mdw.AuthJWT(d.JWT, auth.WriterRoles...)
	}

	var reg Registry
	svc := d.Services
	reg.Register(
		ez.Module[domain.Person, domain.PersonInput, domain.PersonPatch]{Svc: svc.People, Guard: guard, Order: 10},
		ez.Module[domain.Experience, domain.ExperienceInput, domain.ExperiencePatch]{Svc: svc.Experiences, Guard: guard, Order: 20},
		ez.Module[domain.Education, domain.EducationInput, domain.EducationPatch]{Svc: svc.Education, Guard: guard, Order: 30},
		ez.Module[domain.Skill, domain.SkillInput, domain.SkillPatch]{Svc: svc.Skills, Guard: guard, Order: 40},
	)
	reg.MountAll(r.Group(""))
	return r
}
