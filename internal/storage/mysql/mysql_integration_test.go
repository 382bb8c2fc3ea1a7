//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"japan_hotel_booking/internal/domain"
	"japan_hotel_booking/internal/shared"
	mysqlstore "japan_hotel_booking/internal/storage/mysql"
)

func migrationsDir(t *testing.T) string {
	t.Helper()
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=storefront",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/storefront?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestStore_MySQL_GetSet(t *testing.T) {
	db := startMySQL(t)
	st := mysqlstore.New(db)
	ctx := context.Background()

	var rs []domain.Review
	ok, err := st.Get(ctx, domain.KeyReviews, &rs)
	if err != nil || ok {
		t.Fatalf("expected empty table, ok=%v err=%v", ok, err)
	}

	seed := shared.SeedReviews()
	if err := st.Set(ctx, domain.KeyReviews, seed); err != nil {
		t.Fatalf("Set: %v", err)
	}
	ok, err = st.Get(ctx, domain.KeyReviews, &rs)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(rs) != len(seed) || rs[0].ID != seed[0].ID || !rs[0].CreatedAt.Equal(seed[0].CreatedAt) {
		t.Fatalf("round trip mismatch: %+v", rs[0])
	}

	// overwrite keeps a single row per key
	if err := st.Set(ctx, domain.KeyReviews, seed[:1]); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := st.Get(ctx, domain.KeyReviews, &rs); err != nil || len(rs) != 1 {
		t.Fatalf("expected overwrite, got %d err=%v", len(rs), err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM kv_entries`).Scan(&n); err != nil || n != 1 {
		t.Fatalf("rows=%d err=%v", n, err)
	}
}
