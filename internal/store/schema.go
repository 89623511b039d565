package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS habits (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    start_date  TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS stats (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    date        TEXT NOT NULL,
    habit_id    TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    status      INTEGER NOT NULL,
    created_at  TEXT NOT NULL,
    UNIQUE (date, habit_id)
);

CREATE INDEX IF NOT EXISTS idx_stats_date ON stats(date);
`
