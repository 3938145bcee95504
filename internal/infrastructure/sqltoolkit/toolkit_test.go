package sqltoolkit

import "testing"

func TestIsReadOnlyQuery(t *testing.T) {
	cases := []struct {
		query string
		want  bool
	}{
		{"SELECT count(*) FROM film", true},
		{"  select title from film limit 5", true},
		{"WITH top AS (SELECT 1) SELECT * FROM top", true},
		{"with x as (select 1) select * from x", true},
		{"DELETE FROM film", false},
		{"INSERT INTO film VALUES (1)", false},
		{"UPDATE film SET title = 'x'", false},
		{"DROP TABLE film", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsReadOnlyQuery(tc.query); got != tc.want {
			t.Fatalf("IsReadOnlyQuery(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestSplitTableList(t *testing.T) {
	tables := splitTableList(" film, actor ,'rental', \"inventory\" ,, ")
	if len(tables) != 4 {
		t.Fatalf("expected 4 tables, got %d: %v", len(tables), tables)
	}
	if tables[0] != "film" || tables[2] != "rental" || tables[3] != "inventory" {
		t.Fatalf("unexpected tables: %v", tables)
	}
}
