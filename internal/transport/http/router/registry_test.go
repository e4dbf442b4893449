package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type recMod struct {
	name  string
	order int
	seen  *[]string
}

func (m recMod) MountAPI(g *gin.RouterGroup) {
	*m.seen = append(*m.seen, m.name)
	g.GET("/"+m.name, func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func (m recMod) Priority() int { return m.order }

type plainMod struct{ seen *[]string }

func (m plainMod) MountAPI(*gin.RouterGroup) { *m.seen = append(*m.seen, "plain") }

func TestRegistryMountOrder(t *testing.T) {
	var seen []string
	var reg Registry
	reg.Register(
		plainMod{seen: &seen},
		recMod{name: "b", order: 20, seen: &seen},
		recMod{name: "a", order: 10, seen: &seen},
	)
	assert.Equal(t, 3, reg.Len())

	r := gin.New()
	reg.MountAll(r.Group("/v"))
	assert.Equal(t, []string{"a", "b", "plain"}, seen)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v/a", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
