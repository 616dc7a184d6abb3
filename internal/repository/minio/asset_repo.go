package minio

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/emporiodaserra/storefront-backend/internal/cfg"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// placeholderPNG é um PNG transparente de 1x1 usado como imagem de
// fallback quando o produto não tem foto cadastrada.
var placeholderPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

// AssetRepo resolve URLs públicas das imagens do catálogo armazenadas no MinIO.
type AssetRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewAssetRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *AssetRepo {
	return &AssetRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// EnsurePlaceholder garante que o objeto de fallback exista no bucket.
// Chamado uma vez na subida da aplicação.
func (a *AssetRepo) EnsurePlaceholder(ctx context.Context) error {
	_, err := a.mc.StatObject(ctx, a.cfg.BucketName, a.cfg.PlaceholderKey, minio.StatObjectOptions{})
	if err == nil {
		return nil
	}

	resp := minio.ToErrorResponse(err)
	if resp.Code != "NoSuchKey" {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	reader := bytes.NewReader(placeholderPNG)
	_, err = a.mc.PutObject(ctx, a.cfg.BucketName, a.cfg.PlaceholderKey, reader, int64(len(placeholderPNG)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ResolveURL transforma uma chave de objeto em URL pública. Valores que
// já são URLs absolutas passam intactos.
func (a *AssetRepo) ResolveURL(key string) string {
	if key == "" {
		return a.PlaceholderURL()
	}

	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}

	return fmt.Sprintf("%s/%s", a.baseURL(), strings.TrimPrefix(key, "/"))
}

// PlaceholderURL retorna a URL pública da imagem de fallback.
func (a *AssetRepo) PlaceholderURL() string {
	return fmt.Sprintf("%s/%s", a.baseURL(), a.cfg.PlaceholderKey)
}

func (a *AssetRepo) baseURL() string {
	if a.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(a.cfg.PublicBaseURL, "/")
	}

	scheme := "http"
	if a.cfg.MinioUseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s", scheme, a.cfg.MinioEndpoint, a.cfg.BucketName)
}
