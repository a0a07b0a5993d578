package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	ucpricing "github.com/BLEINATS/estetica-auto-api/internal/usecase/pricing"
)

const reportTTL = 5 * time.Minute

// RedisReportCache guarda o relatório de lucratividade pronto por loja.
// Qualquer falha de Redis vira cache miss — nunca derruba a API.
type RedisReportCache struct {
	rdb *redis.Client
}

func NewRedisReportCache(addr, password string) *RedisReportCache {
	return &RedisReportCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

var _ ucpricing.ReportCache = (*RedisReportCache)(nil)

func key(shopID uint) string {
	return fmt.Sprintf("profitability:report:%d", shopID)
}

func (c *RedisReportCache) Get(ctx context.Context, shopID uint) (*ucpricing.Report, bool) {
	data, err := c.rdb.Get(ctx, key(shopID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Println("report cache get:", err)
		return nil, false
	}

	var report ucpricing.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false
	}
	return &report, true
}

func (c *RedisReportCache) Set(ctx context.Context, shopID uint, report *ucpricing.Report) {
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(shopID), data, reportTTL).Err(); err != nil {
		log.Println("report cache set:", err)
	}
}

func (c *RedisReportCache) Invalidate(ctx context.Context, shopID uint) {
	if err := c.rdb.Del(ctx, key(shopID)).Err(); err != nil {
		log.Println("report cache invalidate:", err)
	}
}
