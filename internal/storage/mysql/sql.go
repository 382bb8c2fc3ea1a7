package mysql

const getEntrySQL = `
SELECT v
FROM kv_entries
WHERE k = ?
`

// VALUES(col) keeps compatibility with MySQL 5.7 and MariaDB.
const upsertEntrySQL = `
INSERT INTO kv_entries (k, v)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  v          = VALUES(v),
  updated_at = CURRENT_TIMESTAMP
`
