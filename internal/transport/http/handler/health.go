package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"curriculo-api/internal/repo"
	resp "curriculo-api/internal/transport/http/response"
)

// 对外提示文案
const (
	MsgOnline = "API de currículos online! Funcionando!"
	MsgDBUp   = "Conexão com o banco de dados bem-sucedida!"
	MsgDBDown = "Erro ao conectar ao banco de dados."
)

type Health struct {
	DB *gorm.DB
}

// Root 服务在线提示
func (h Health) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": MsgOnline})
}

func (h Health) Live(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) }

// DBStatus 探测数据库连通性
func (h Health) DBStatus(c *gin.Context) {
	if err := repo.Ping(c.Request.Context(), h.DB); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, MsgDBDown))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": MsgDBUp})
}
