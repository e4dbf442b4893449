package ez

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"curriculo-api/internal/domain"
	resp "curriculo-api/internal/transport/http/response"
)

// Service 单一实体类型的 CRUD 能力（由 service.Resource 实现）
type Service[T any, I any, P any] interface {
	Kind() domain.Kind
	Create(ctx context.Context, ownerID uint, in I) (*T, error)
	ListAll(ctx context.Context) ([]T, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, p P) (*T, error)
	Delete(ctx context.Context, id uint) (uint, error)
}

type CrudConfig[T any, I any, P any] struct {
	Group *gin.RouterGroup
	Svc   Service[T, I, P]
	Guard gin.HandlerFunc // 写操作前置（如 JWT），可为 nil
}

// 路径参数名
const (
	paramID    = "id"
	paramOwner = "pessoaId"
)

// Crud 按 Kind 挂载路由：
//
//	根实体: GET / | GET /:id | POST / | PUT /:id | DELETE /:id
//	子实体: POST /:pessoaId | GET /:pessoaId | GET /detalhe/:id | PUT /:id | DELETE /:id
func Crud[T any, I any, P any](cfg CrudConfig[T, I, P]) {
	k := cfg.Svc.Kind()
	g := cfg.Group.Group("/" + k.Name)
	h := handlers[T, I, P]{svc: cfg.Svc, kind: k}

	write := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.Guard == nil {
			return []gin.HandlerFunc{fn}
		}
		return []gin.HandlerFunc{cfg.Guard, fn}
	}

	if k.Owned {
		g.POST("/:"+paramOwner, write(h.create)...)
		g.GET("/:"+paramOwner, h.listByOwner)
		g.GET("/detalhe/:"+paramID, h.get)
	} else {
		g.GET("", h.listAll)
		g.GET("/:"+paramID, h.get)
		g.POST("", write(h.create)...)
	}
	g.PUT("/:"+paramID, write(h.update)...)
	g.DELETE("/:"+paramID, write(h.remove)...)
}

type handlers[T any, I any, P any] struct {
	svc  Service[T, I, P]
	kind domain.Kind
}

func (h handlers[T, I, P]) create(c *gin.Context) {
	var ownerID uint
	if h.kind.Owned {
		id, ok := pathID(c, paramOwner)
		if !ok {
			return
		}
		ownerID = id
	}
	var in I
	if !bindBody(c, &in) {
		return
	}
	m, err := h.svc.Create(c.Request.Context(), ownerID, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h handlers[T, I, P]) listAll(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h handlers[T, I, P]) listByOwner(c *gin.Context) {
	ownerID, ok := pathID(c, paramOwner)
	if !ok {
		return
	}
	items, err := h.svc.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h handlers[T, I, P]) get(c *gin.Context) {
	id, ok := pathID(c, paramID)
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h handlers[T, I, P]) update(c *gin.Context) {
	id, ok := pathID(c, paramID)
	if !ok {
		return
	}
	var p P
	if !bindBody(c, &p) {
		return
	}
	m, err := h.svc.Update(c.Request.Context(), id, p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h handlers[T, I, P]) remove(c *gin.Context) {
	id, ok := pathID(c, paramID)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.Deleted{ID: deleted, Message: h.kind.Label + " deleted"})
}

// pathID 非数字 id 直接 400，不访问数据库
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || v == 0 {
		fail(c, domain.InvalidInput("invalid "+name))
		return 0, false
	}
	return uint(v), true
}

// bindBody 空 body 等同于 {}
func bindBody(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, resp.Error(resp.CodeTooLarge, "request body too large"))
		return false
	}
	fail(c, domain.InvalidInput("invalid request body: "+err.Error()))
	return false
}

func fail(c *gin.Context, err error) {
	code, body := resp.FromError(err)
	if code >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(code, body)
}
