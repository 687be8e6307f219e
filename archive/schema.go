// archive/schema.go
package archive

const Schema = `
CREATE TABLE IF NOT EXISTS statements (
	id TEXT PRIMARY KEY,
	query_id TEXT NOT NULL,
	account_id TEXT NOT NULL,
	from_date TEXT NOT NULL,
	to_date TEXT NOT NULL,
	downloaded DATETIME NOT NULL,
	raw BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_statements_account ON statements(account_id, from_date);
`
