package store

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	date DATETIME NOT NULL,
	contract_type TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	result REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
CREATE INDEX IF NOT EXISTS idx_trades_contract ON trades(contract_type);
`
