package converter

import (
	"database/sql"
	"time"
)

// ProductModel representa uma linha da tabela products no PostgreSQL.
// Campos opcionais chegam como NULL e são preservados até o normalizador.
type ProductModel struct {
	Sku         string         `db:"sku"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	PhotoURL    sql.NullString `db:"photo_url"`
	Category    sql.NullString `db:"category"`
	PriceCents  sql.NullInt64  `db:"price_cents"`
}

// VariantModel representa uma linha da tabela product_variants.
type VariantModel struct {
	ID         string `db:"id"`
	ProductSku string `db:"product_sku"`
	Label      string `db:"label"`
	Status     string `db:"status"`
	SortOrder  int    `db:"sort_order"`
}

// OutboxEventModel representa uma linha da tabela checkout_events.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	CartID      string     `db:"cart_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
