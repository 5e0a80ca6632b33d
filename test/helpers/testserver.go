package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"jobportal_backend/internal/app"
	"jobportal_backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter atomic.Int64

// TestServer bundles a running router with the database behind it.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// NewTestServer boots the full router against a fresh database. When
// DATABASE_URL is set it connects to that postgres instance and clears the
// tables; otherwise every server gets its own named in-memory sqlite
// database, so tests run anywhere without external services.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.Port = 4001
	cfg.JWT.Secret = "my_super_secret_key_for_tests_12345"
	cfg.JWT.TTL = 60

	var (
		db  *gorm.DB
		err error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	} else {
		cfg.Database.DSN = fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbCounter.Add(1))
		db, err = gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		t.Fatalf("failed to open test database (%s): %v", cfg.Database.DSN, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB from GORM: %v", err)
	}
	// One connection keeps the in-memory sqlite database alive for the whole
	// test and serializes access to it.
	sqlDB.SetMaxOpenConns(1)

	if err := app.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	ts := &TestServer{
		Server: httptest.NewServer(app.SetupRouter(cfg, db)),
		DB:     db,
		Config: cfg,
	}
	ts.ClearTables(t)
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables empties every table, children first so foreign keys hold.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"applications", "jobs", "companies", "users"} {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clear table %s: %v", table, err)
		}
	}
}

// SendRequest performs an HTTP request against the test server and returns
// the response together with its body read to a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}
