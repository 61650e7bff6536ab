package datastore

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// testDB builds a bun.DB for rendering SQL; nothing connects until a
// query executes.
func testDB() *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN("postgres://localhost:5432/perkhub_test?sslmode=disable"),
	))
	return bun.NewDB(sqldb, pgdialect.New())
}

func TestClaimViewQuery_KeepsClaimsWithoutDeals(t *testing.T) {
	q := claimViewQuery(testDB()).String()

	if !strings.Contains(q, "LEFT JOIN deal d ON d.id = c.deal_id") {
		t.Errorf("claim view must not drop claims whose deal is gone:\n%s", q)
	}
	if !strings.Contains(q, "coalesce(d.title, '')") {
		t.Errorf("deal summary columns must tolerate a missing deal:\n%s", q)
	}
}

func TestClaimViewsByUserQuery_OrdersNewestFirst(t *testing.T) {
	q := claimViewsByUserQuery(testDB(), 7).String()

	if !strings.Contains(q, "ORDER BY c.claimed_at DESC") {
		t.Errorf("claim listing must be newest first:\n%s", q)
	}
	if !strings.Contains(q, "c.user_id = 7") {
		t.Errorf("claim listing must be scoped to the user:\n%s", q)
	}
}
