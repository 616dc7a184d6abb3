package redis

import (
	"context"
	"encoding/json"

	"github.com/emporiodaserra/storefront-backend/internal/cfg"
	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/internal/repository/redis/converter"
	"github.com/emporiodaserra/storefront-backend/pkg/clients"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// catalogKey guarda a lista normalizada completa em um único valor.
const catalogKey = "catalog:products"

// CatalogCacheRepo cacheia a lista normalizada do catálogo com TTL.
// Qualquer falha degrada para cache miss, nunca para erro do fluxo.
type CatalogCacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCatalogCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CatalogCacheRepo {
	return &CatalogCacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProducts devolve a lista cacheada, ou (nil, false) em qualquer miss.
func (c *CatalogCacheRepo) GetProducts(ctx context.Context) ([]domain.Product, bool) {
	data, err := c.client.Client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != r.Nil {
			c.logger.Warnf("redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, false
	}

	var models []converter.ProductRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warnf("catalog cache unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), catalogKey).Err(); err != nil {
			c.logger.Warnf("redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, false
	}

	return c.conv.ToArrDomain(models), true
}

// SetProducts cacheia a lista normalizada com o TTL configurado.
func (c *CatalogCacheRepo) SetProducts(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(c.conv.ToArrRedisModel(products))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, catalogKey, data, c.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
