// Package memory traz um CartStorage em memória, usado nos testes e em
// desenvolvimento local sem Redis.
package memory

import (
	"context"
	"sync"

	"github.com/emporiodaserra/storefront-backend/internal/usecase"
)

const opSync = "sync"

// CartStorage guarda o ledger por carrinho em um mapa e replica o contrato
// de notificação do backend real: toda escrita publica um sinal de mudança
// para os assinantes.
type CartStorage struct {
	// ReadErr, WriteErr e SubscribeErr, quando definidos, são devolvidos
	// pelas operações correspondentes. Servem para exercitar as políticas
	// de degradação.
	ReadErr      error
	WriteErr     error
	SubscribeErr error

	origin string

	mu     sync.Mutex
	data   map[string][]byte
	subs   map[string]map[int64]func(usecase.CartEvent)
	nextID int64
}

func NewCartStorage(origin string) *CartStorage {
	return &CartStorage{
		origin: origin,
		data:   make(map[string][]byte),
		subs:   make(map[string]map[int64]func(usecase.CartEvent)),
	}
}

func (s *CartStorage) Read(_ context.Context, cartID string) ([]byte, bool, error) {
	if s.ReadErr != nil {
		return nil, false, s.ReadErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[cartID]
	return data, ok, nil
}

func (s *CartStorage) Write(_ context.Context, cartID string, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}

	s.mu.Lock()
	s.data[cartID] = data
	callbacks := s.callbacksLocked(cartID)
	s.mu.Unlock()

	ev := usecase.CartEvent{CartID: cartID, Op: opSync, Origin: s.origin}
	for _, fn := range callbacks {
		fn(ev)
	}

	return nil
}

func (s *CartStorage) Subscribe(_ context.Context, cartID string, fn func(usecase.CartEvent)) (func(), error) {
	if s.SubscribeErr != nil {
		return nil, s.SubscribeErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	if s.subs[cartID] == nil {
		s.subs[cartID] = make(map[int64]func(usecase.CartEvent))
	}
	s.subs[cartID][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[cartID], id)
	}, nil
}

// Seed grava dados brutos diretamente, sem notificar ninguém. Útil para
// preparar cenários de migração e de payload corrompido.
func (s *CartStorage) Seed(cartID string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[cartID] = data
}

func (s *CartStorage) callbacksLocked(cartID string) []func(usecase.CartEvent) {
	callbacks := make([]func(usecase.CartEvent), 0, len(s.subs[cartID]))
	for _, fn := range s.subs[cartID] {
		callbacks = append(callbacks, fn)
	}

	return callbacks
}
