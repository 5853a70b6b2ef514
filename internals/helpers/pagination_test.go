package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseOn(t *testing.T, target string, opt PageOptions) PageParams {
	t.Helper()

	var got PageParams
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePage(c, opt)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	return got
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		opt     PageOptions
		wantPg  int
		wantPer int
	}{
		{name: "defaults", target: "/", opt: ListOpts, wantPg: 1, wantPer: 20},
		{name: "explicit", target: "/?page=3&per_page=10", opt: ListOpts, wantPg: 3, wantPer: 10},
		{name: "limit alias", target: "/?limit=15", opt: ListOpts, wantPg: 1, wantPer: 15},
		{name: "clamped to max", target: "/?per_page=9999", opt: ListOpts, wantPg: 1, wantPer: 100},
		{name: "negative page", target: "/?page=-2", opt: ListOpts, wantPg: 1, wantPer: 20},
		{name: "garbage per_page", target: "/?per_page=abc", opt: ListOpts, wantPg: 1, wantPer: 20},
		{name: "admin preset", target: "/", opt: AdminOpts, wantPg: 1, wantPer: 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseOn(t, tc.target, tc.opt)
			if p.Page != tc.wantPg || p.PerPage != tc.wantPer {
				t.Errorf("got page=%d per=%d, want page=%d per=%d", p.Page, p.PerPage, tc.wantPg, tc.wantPer)
			}
		})
	}
}

func TestLimitOffset(t *testing.T) {
	p := PageParams{Page: 3, PerPage: 20}
	if p.Limit() != 20 {
		t.Errorf("Limit = %d", p.Limit())
	}
	if p.Offset() != 40 {
		t.Errorf("Offset = %d", p.Offset())
	}
}

func TestBuildMeta(t *testing.T) {
	p := PageParams{Page: 2, PerPage: 20}
	meta := p.BuildMeta(45)
	if meta["total_pages"] != 3 {
		t.Errorf("total_pages = %v, want 3", meta["total_pages"])
	}

	meta = p.BuildMeta(0)
	if meta["total_pages"] != 1 {
		t.Errorf("empty set total_pages = %v, want 1", meta["total_pages"])
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"title": "title",
		"date":  "repertoire.date",
	}

	got, err := SafeOrderClause(allowed, "date", "title", "desc")
	if err != nil || got != "repertoire.date DESC" {
		t.Fatalf("got %q, err %v", got, err)
	}

	// unknown key falls back to the default, never to raw input
	got, err = SafeOrderClause(allowed, "title; DROP TABLE genres", "title", "asc")
	if err != nil || got != "title ASC" {
		t.Fatalf("got %q, err %v", got, err)
	}

	if _, err := SafeOrderClause(map[string]string{}, "x", "y", "asc"); err == nil {
		t.Fatal("expected error with empty whitelist")
	}
}
