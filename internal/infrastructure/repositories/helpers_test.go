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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
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
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		password TEXT,
		location TEXT,
		address TEXT,
		city TEXT,
		state TEXT,
		country TEXT,
		zip_code TEXT,
		auto_location TEXT,
		lat REAL,
		lng REAL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWorkerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE workers (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		password TEXT,
		phone_number TEXT NOT NULL,
		profile_picture TEXT,
		location TEXT,
		description TEXT,
		is_available BOOLEAN NOT NULL DEFAULT false,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSpecializationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE specializations (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createLiveLocationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE workers_location (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		created_at DATETIME
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		worker_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		description TEXT,
		booked_for DATETIME,
		duration_minutes INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		payment_id TEXT,
		signature TEXT,
		amount TEXT NOT NULL,
		currency TEXT NOT NULL DEFAULT 'INR',
		status TEXT NOT NULL,
		method TEXT NOT NULL,
		email TEXT,
		contact TEXT,
		created_at DATETIME
	);`)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		worker_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT,
		created_at DATETIME
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	createUserTable(t, db)
	createWorkerTable(t, db)
	createSpecializationTable(t, db)
	createLiveLocationTable(t, db)
	createOrderTable(t, db)
	createTransactionTable(t, db)
	createReviewTable(t, db)
}
