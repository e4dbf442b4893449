package ez

import "github.com/gin-gonic/gin"

// Module 把一个实体服务包装成可注册的路由模块
type Module[T any, I any, P any] struct {
	Svc   Service[T, I, P]
	Guard gin.HandlerFunc
	Order int // 数值越小越先挂载
}

func (m Module[T, I, P]) MountAPI(g *gin.RouterGroup) {
	Crud(CrudConfig[T, I, P]{Group: g, Svc: m.Svc, Guard: m.Guard})
}

func (m Module[T, I, P]) Priority() int { return m.Order }
