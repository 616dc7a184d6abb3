package redis

import (
	"context"
	"encoding/json"

	"github.com/emporiodaserra/storefront-backend/internal/cfg"
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
	"github.com/emporiodaserra/storefront-backend/pkg/clients"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartStorage persiste o ledger de cada carrinho como um único valor JSON e
// sinaliza mudanças por pub/sub, permitindo que outra instância do serviço
// (outro "contexto") observe o mesmo carrinho sem polling.
type CartStorage struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	origin string
	logger logger.Logger
}

// NewCartStorage cria o backend Redis do carrinho. origin é carimbado nos
// sinais publicados, para que a instância autora descarte o próprio eco.
func NewCartStorage(client *clients.RedisClient, cfg *cfg.RedisCfg, origin string, logger logger.Logger) *CartStorage {
	return &CartStorage{
		client: client,
		cfg:    cfg,
		origin: origin,
		logger: logger,
	}
}

// Read devolve o valor bruto do ledger. Chave ausente é (nil, false, nil).
func (s *CartStorage) Read(ctx context.Context, cartID string) ([]byte, bool, error) {
	data, err := s.client.Client.Get(ctx, cartKey(cartID)).Bytes()
	if err != nil {
		if err == r.Nil {
			return nil, false, nil
		}
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, true, nil
}

// Write substitui o ledger inteiro e publica o sinal de mudança. A publicação
// é melhor esforço: falha nela não invalida a escrita.
func (s *CartStorage) Write(ctx context.Context, cartID string, data []byte) error {
	if err := s.client.Client.Set(ctx, cartKey(cartID), data, s.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ev, err := json.Marshal(usecase.CartEvent{CartID: cartID, Op: "sync", Origin: s.origin})
	if err != nil {
		s.logger.Warnf("cart event marshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := s.client.Client.Publish(ctx, cartChannel(cartID), ev).Err(); err != nil {
		s.logger.Warnf("cart event publish failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// Subscribe entrega os sinais de mudança do canal do carrinho. O cancel
// retornado encerra a assinatura e o goroutine de consumo.
func (s *CartStorage) Subscribe(ctx context.Context, cartID string, fn func(usecase.CartEvent)) (func(), error) {
	pubsub := s.client.Client.Subscribe(ctx, cartChannel(cartID))

	// Força o handshake da assinatura antes de devolver o cancel
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	go func() {
		for msg := range pubsub.Channel() {
			var ev usecase.CartEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				s.logger.Warnf("cart event unmarshal failed: %v", err)
				continue
			}
			fn(ev)
		}
	}()

	return func() {
		if err := pubsub.Close(); err != nil {
			s.logger.Warnf("cart pubsub close failed: %v", err)
		}
	}, nil
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func cartChannel(cartID string) string {
	return "cart:events:" + cartID
}
