package db

// Schema holds the DDL for all service tables. Applied by cmd/db_setup,
// every statement is idempotent so re-running the tool is safe.
const Schema = `
CREATE TABLE IF NOT EXISTS fit_user (
	id             SERIAL PRIMARY KEY,
	email          TEXT NOT NULL UNIQUE,
	password_hash  TEXT NOT NULL,
	name           TEXT NOT NULL,
	age            INT NOT NULL,
	gender         TEXT NOT NULL,
	height         REAL NOT NULL,
	weight         REAL NOT NULL,
	activity_level TEXT NOT NULL,
	fitness_goal   TEXT,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise (
	id                  SERIAL PRIMARY KEY,
	name                TEXT NOT NULL,
	category            TEXT NOT NULL,
	muscle              TEXT NOT NULL,
	equipment           TEXT NOT NULL,
	difficulty          TEXT NOT NULL,
	instructions        JSONB NOT NULL DEFAULT '[]',
	calories_per_minute REAL NOT NULL DEFAULT 5
);

CREATE TABLE IF NOT EXISTS user_workout (
	id               SERIAL PRIMARY KEY,
	user_id          INT NOT NULL REFERENCES fit_user (id),
	name             TEXT NOT NULL,
	status           TEXT NOT NULL,
	exercises        JSONB NOT NULL DEFAULT '[]',
	total_duration   INT NOT NULL DEFAULT 0,
	est_calories     INT NOT NULL DEFAULT 0,
	saved_workout_id INT,
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS user_workout_user_status_idx ON user_workout (user_id, status);

CREATE TABLE IF NOT EXISTS workout (
	id             SERIAL PRIMARY KEY,
	user_id        INT NOT NULL REFERENCES fit_user (id),
	name           TEXT NOT NULL,
	exercises      JSONB NOT NULL DEFAULT '[]',
	total_duration INT NOT NULL DEFAULT 0,
	est_calories   INT NOT NULL DEFAULT 0,
	difficulty     TEXT NOT NULL DEFAULT 'beginner',
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS workout_user_idx ON workout (user_id);

CREATE TABLE IF NOT EXISTS workout_session (
	id              SERIAL PRIMARY KEY,
	user_id         INT NOT NULL REFERENCES fit_user (id),
	workout_id      TEXT NOT NULL,
	duration        INT NOT NULL,
	calories_burned INT NOT NULL,
	completed_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS workout_session_user_completed_idx ON workout_session (user_id, completed_at);

CREATE TABLE IF NOT EXISTS googlefit_token (
	user_id       INT PRIMARY KEY REFERENCES fit_user (id),
	access_token  TEXT NOT NULL,
	refresh_token TEXT NOT NULL,
	expires_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS googlefit_day (
	user_id        INT NOT NULL REFERENCES fit_user (id),
	date           TEXT NOT NULL,
	steps          INT NOT NULL DEFAULT 0,
	distance       REAL NOT NULL DEFAULT 0,
	calories       INT NOT NULL DEFAULT 0,
	active_minutes INT NOT NULL DEFAULT 0,
	synced_at      TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (user_id, date)
);
`
