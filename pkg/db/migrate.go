// pkg/db/migrate.go
package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is the idempotent DDL for all collections. Applied once at startup so
// the service can boot against a fresh database without external tooling.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id      TEXT PRIMARY KEY,
    email        TEXT NOT NULL UNIQUE,
    name         TEXT NOT NULL,
    picture      TEXT,
    gold_balance NUMERIC(20, 4) NOT NULL DEFAULT 0,
    created_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
    session_token TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    expires_at    TIMESTAMPTZ NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS gold_prices (
    id        BIGSERIAL PRIMARY KEY,
    timestamp TIMESTAMPTZ NOT NULL,
    price_24k NUMERIC(20, 4) NOT NULL,
    price_22k NUMERIC(20, 4) NOT NULL,
    price_18k NUMERIC(20, 4) NOT NULL,
    currency  TEXT NOT NULL,
    source    TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_gold_prices_timestamp ON gold_prices (timestamp);

CREATE TABLE IF NOT EXISTS orders (
    order_id      TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    items         JSONB NOT NULL DEFAULT '[]',
    total_amount  NUMERIC(20, 4) NOT NULL DEFAULT 0,
    status        TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL,
    tracking_info TEXT
);

CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS portfolios (
    user_id        TEXT PRIMARY KEY,
    gold_holdings  NUMERIC(20, 6) NOT NULL DEFAULT 0,
    total_invested NUMERIC(20, 4) NOT NULL DEFAULT 0,
    current_value  NUMERIC(20, 4) NOT NULL DEFAULT 0,
    updated_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS vouchers (
    voucher_id      TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL,
    amount          NUMERIC(20, 4) NOT NULL DEFAULT 0,
    recipient_name  TEXT NOT NULL DEFAULT '',
    recipient_phone TEXT NOT NULL DEFAULT '',
    status          TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL,
    redeemed_at     TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS jewelry_items (
    item_id        TEXT PRIMARY KEY,
    store_id       TEXT NOT NULL DEFAULT '',
    store_name     TEXT NOT NULL DEFAULT '',
    name           TEXT NOT NULL,
    name_ar        TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL DEFAULT '',
    description_ar TEXT NOT NULL DEFAULT '',
    price          NUMERIC(20, 4) NOT NULL,
    weight_grams   NUMERIC(20, 6) NOT NULL,
    karat          INTEGER NOT NULL,
    category       TEXT NOT NULL,
    image_url      TEXT,
    in_stock       BOOLEAN NOT NULL DEFAULT TRUE,
    rating         DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_jewelry_items_store ON jewelry_items (store_id);

CREATE TABLE IF NOT EXISTS stores (
    store_id       TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    name_ar        TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL DEFAULT '',
    description_ar TEXT NOT NULL DEFAULT '',
    logo_url       TEXT,
    rating         DOUBLE PRECISION NOT NULL DEFAULT 4.5,
    total_products INTEGER NOT NULL DEFAULT 0,
    location       TEXT,
    phone          TEXT,
    is_verified    BOOLEAN NOT NULL DEFAULT TRUE
);
`

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
