package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		phone TEXT,
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchants (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		business_name TEXT NOT NULL,
		business_email TEXT NOT NULL,
		phone TEXT,
		address TEXT NOT NULL,
		latitude REAL,
		longitude REAL,
		rating REAL DEFAULT 0,
		review_count INTEGER DEFAULT 0,
		status TEXT NOT NULL,
		is_active BOOLEAN DEFAULT 0,
		approved_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		merchant_id TEXT NOT NULL,
		service_type TEXT NOT NULL,
		status TEXT NOT NULL,
		pickup_address TEXT NOT NULL,
		delivery_address TEXT NOT NULL,
		scheduled_date TEXT NOT NULL,
		scheduled_time TEXT NOT NULL,
		weight_kg REAL,
		instructions TEXT,
		quote_id TEXT,
		total_price REAL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createBookingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bookings (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		merchant_id TEXT NOT NULL,
		order_id TEXT NOT NULL UNIQUE,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		address TEXT NOT NULL,
		notes TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createShopTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE shop_orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		total REAL NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE shop_order_items (
		id TEXT PRIMARY KEY,
		shop_order_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		created_at DATETIME
	);`)
}

func createPricingTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE price_rules (
		id TEXT PRIMARY KEY,
		service_type TEXT NOT NULL UNIQUE,
		price_per_kg REAL NOT NULL,
		base_fee REAL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE quotes (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		service_type TEXT NOT NULL,
		estimated_weight_kg REAL NOT NULL,
		quoted_total REAL NOT NULL,
		status TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
