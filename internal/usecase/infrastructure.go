package usecase

import "context"

// AssetsInfra resolve chaves de objeto de imagem em URLs públicas e expõe a
// URL do placeholder usado quando o produto não tem foto.
type AssetsInfra interface {
	ResolveURL(key string) string
	PlaceholderURL() string
}

// MessageProducer publica eventos brutos no barramento de mensagens.
type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
