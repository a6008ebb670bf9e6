package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/micahco/musicdb/config"
)

const (
	AlbumsQuery      = `SELECT title FROM Albums ORDER BY release_date DESC LIMIT 50`
	InsertGenreQuery = `INSERT INTO Genres (name) VALUES ($1)`

	AlbumLimit = 50
)

// Conn is the subset of *pgx.Conn used by the API.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close(ctx context.Context) error
	// Lost is closed once the underlying connection has been torn down.
	Lost() <-chan struct{}
}

type Dialer func(ctx context.Context, connString string) (Conn, error)

type pgConn struct {
	*pgx.Conn
}

func (c pgConn) Lost() <-chan struct{} {
	return c.PgConn().CleanupDone()
}

// DialPostgres opens a single, unpooled connection.
func DialPostgres(ctx context.Context, connString string) (Conn, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, err
	}
	return pgConn{conn}, nil
}

// API opens a fresh connection for every call. Nothing is shared between
// calls, so concurrent calls are safe.
type API struct {
	dial Dialer
	log  zerolog.Logger
}

func New(log zerolog.Logger) API {
	return NewWithDialer(DialPostgres, log)
}

func NewWithDialer(dial Dialer, log zerolog.Logger) API {
	return API{
		dial: dial,
		log:  log.With().Str("component", "api").Logger(),
	}
}

func (api API) opLogger(op string) zerolog.Logger {
	return api.log.With().
		Str("op", op).
		Str("op_id", uuid.NewString()).
		Logger()
}

// connect dials the database and hands the connection to a detached watcher.
// Calling release marks the operation finished; the watcher then closes the
// connection.
func (api API) connect(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (Conn, func(), error) {
	conn, err := api.dial(ctx, cfg.ConnString())
	if err != nil {
		return nil, nil, newError(ConnectionFailed, err)
	}

	done := make(chan struct{})
	go watch(conn, done, log)

	return conn, func() { close(done) }, nil
}

// watch is never joined. Its errors only ever reach the log.
func watch(conn Conn, done <-chan struct{}, log zerolog.Logger) {
	select {
	case <-done:
		err := conn.Close(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("connection error")
		}
	case <-conn.Lost():
		log.Error().Msg("connection error: connection lost")
	}
}

// FetchAlbums returns up to AlbumLimit titles, newest release first.
func (api API) FetchAlbums(ctx context.Context, cfg config.DBConfig) ([]string, error) {
	log := api.opLogger("fetch_albums")

	conn, release, err := api.connect(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		return nil, err
	}
	defer release()

	rows, err := conn.Query(ctx, AlbumsQuery)
	if err != nil {
		log.Error().Err(err).Msg("query failed")
		return nil, newError(QueryFailed, err)
	}

	titles, err := parseRowsToTitles(rows, AlbumLimit)
	if err != nil {
		log.Error().Err(err).Msg("reading rows failed")
		return nil, newError(QueryFailed, err)
	}

	log.Debug().Int("count", len(titles)).Msg("albums fetched")
	return titles, nil
}

// AddGenre inserts a single genre row. Duplicates are left to the database.
func (api API) AddGenre(ctx context.Context, cfg config.DBConfig, name string) error {
	log := api.opLogger("add_genre")

	conn, release, err := api.connect(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	defer release()

	tag, err := conn.Exec(ctx, InsertGenreQuery, name)
	if err != nil {
		log.Error().Err(err).Str("genre", name).Msg("insert failed")
		return newError(QueryFailed, err)
	}

	log.Debug().Str("genre", name).Int64("rows", tag.RowsAffected()).Msg("genre added")
	return nil
}

func parseRowsToTitles(rows pgx.Rows, limit int) ([]string, error) {
	defer rows.Close()

	titles := []string{}
	for len(titles) < limit && rows.Next() {
		var t string
		err := rows.Scan(&t)
		if err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}

	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}
