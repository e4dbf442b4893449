package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// Namespace 单一实体类型的 JSON 读穿缓存，key 为 prefix:ns:id
type Namespace[T any] struct {
	c   *Cache
	ns  string
	ttl time.Duration
}

func NewNamespace[T any](c *Cache, ns string, ttl time.Duration) *Namespace[T] {
	return &Namespace[T]{c: c, ns: ns, ttl: ttl}
}

func (n *Namespace[T]) Key(id uint) string {
	return n.c.Key(n.ns, strconv.FormatUint(uint64(id), 10))
}

// Get 未命中时回源；load 出错不写缓存，删除后不会命中旧的 404
func (n *Namespace[T]) Get(ctx context.Context, id uint, load func(context.Context) (*T, error)) (*T, error) {
	b, err := n.c.GetOrLoad(ctx, n.Key(id), n.ttl, func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(b, out); err != nil {
		// 脏数据直接丢弃，下次重新回源
		_ = n.c.Delete(ctx, n.Key(id))
		return load(ctx)
	}
	return out, nil
}

func (n *Namespace[T]) Evict(ctx context.Context, id uint) error {
	return n.c.Delete(ctx, n.Key(id))
}
