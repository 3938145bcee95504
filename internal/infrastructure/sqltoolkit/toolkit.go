// Package sqltoolkit exposes the Pagila database to the agent framework as a
// set of read-only tools: table listing, schema introspection and query
// execution. The reasoning loop that decides when to call them belongs to the
// framework, not to this package.
package sqltoolkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/tools"
	"github.com/tmc/langchaingo/tools/sqldatabase"
)

// Tools returns the toolkit bound to the shared database handle.
func Tools(db *sqldatabase.SQLDatabase) []tools.Tool {
	return []tools.Tool{
		&ListTablesTool{db: db},
		&SchemaTool{db: db},
		&QueryTool{db: db},
	}
}

// ListTablesTool enumerates the usable tables.
type ListTablesTool struct {
	db *sqldatabase.SQLDatabase
}

func (t *ListTablesTool) Name() string {
	return "sql_db_list_tables"
}

func (t *ListTablesTool) Description() string {
	return "Input is an empty string, output is a comma separated list of tables in the database."
}

func (t *ListTablesTool) Call(_ context.Context, _ string) (string, error) {
	return strings.Join(t.db.TableNames(), ", "), nil
}

// SchemaTool returns CREATE TABLE statements and sample rows for the
// requested tables.
type SchemaTool struct {
	db *sqldatabase.SQLDatabase
}

func (t *SchemaTool) Name() string {
	return "sql_db_schema"
}

func (t *SchemaTool) Description() string {
	return "Input is a comma separated list of tables, output is the schema and sample rows for those tables. " +
		"Be sure that the tables actually exist by calling sql_db_list_tables first."
}

func (t *SchemaTool) Call(ctx context.Context, input string) (string, error) {
	requested := splitTableList(input)
	if len(requested) == 0 {
		requested = t.db.TableNames()
	}
	info, err := t.db.TableInfo(ctx, requested)
	if err != nil {
		// Returned as an observation so the agent can correct the table list.
		return fmt.Sprintf("schema lookup failed: %v", err), nil
	}
	return info, nil
}

// QueryTool executes a read-only SQL query against the database.
type QueryTool struct {
	db *sqldatabase.SQLDatabase
}

func (t *QueryTool) Name() string {
	return "sql_db_query"
}

func (t *QueryTool) Description() string {
	return "Input is a detailed and correct SQL query, output is a result from the database. " +
		"Only SELECT statements are allowed. If the query is not correct, an error message will be returned; " +
		"rewrite the query and try again."
}

func (t *QueryTool) Call(ctx context.Context, input string) (string, error) {
	query := strings.TrimSpace(strings.Trim(strings.TrimSpace(input), "`"))
	if !IsReadOnlyQuery(query) {
		return "only read-only SELECT (or WITH) queries are allowed, rewrite the query", nil
	}

	result, err := t.db.Query(ctx, query)
	if err != nil {
		return fmt.Sprintf("query failed: %v", err), nil
	}
	return result, nil
}

// IsReadOnlyQuery reports whether the statement starts with SELECT or WITH.
// The agent prompt already forbids DML; this is the hard stop for when the
// model ignores it.
func IsReadOnlyQuery(query string) bool {
	head := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(head, "SELECT") || strings.HasPrefix(head, "WITH")
}

func splitTableList(input string) []string {
	parts := strings.Split(input, ",")
	tables := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.Trim(strings.TrimSpace(part), "'\"`")
		if name != "" {
			tables = append(tables, name)
		}
	}
	return tables
}
