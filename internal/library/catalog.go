package library

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"os"
	"path"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/Ding-Daniel/osuclone/internal/beatmap"
)

// Catalog is the SQLite-backed beatmap metadata cache behind the song-select
// menu. It stores chart metadata only, never results.
type Catalog struct {
	db *sql.DB
}

type Entry struct {
	Hash   string
	Path   string
	Title  string
	Artist string
	Notes  int
	LastMs float64
}

func Open(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", file)
	if nil != err {
		return nil, err
	}

	initStatement := `
	create table if not exists charts
	  (
		  hash text not null primary key,
		  path text,
		  title text,
		  artist text,
		  notes integer,
		  last_ms real
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, err
	}

	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() {
	if nil != c.db {
		c.db.Close()
	}
}

func hashChart(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Scan walks root for chart files and upserts their metadata, keyed by
// content hash so rescanning is idempotent and moved files simply update
// their path. Unreadable or malformed charts are logged and skipped; only
// catalog errors abort the scan.
func (c *Catalog) Scan(root string) error {
	return filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			log.Warn().Err(err).Str("path", p).Msg("skipping unreadable entry")
			return nil
		}
		if info.IsDir() || path.Ext(info.Name()) != ".json" {
			return nil
		}

		data, err := os.ReadFile(p)
		if nil != err {
			log.Warn().Err(err).Str("path", p).Msg("skipping unreadable chart")
			return nil
		}
		chart, err := beatmap.Decode(data)
		if nil != err {
			log.Warn().Err(err).Str("path", p).Msg("skipping malformed chart")
			return nil
		}

		_, err = c.db.Exec(
			`insert into charts(hash, path, title, artist, notes, last_ms)
			 values(?, ?, ?, ?, ?, ?)
			 on conflict(hash) do update set
			   path = excluded.path,
			   title = excluded.title,
			   artist = excluded.artist,
			   notes = excluded.notes,
			   last_ms = excluded.last_ms`,
			hashChart(data), p, chart.Title, chart.Artist,
			len(chart.Notes), chart.Notes[len(chart.Notes)-1].Ms,
		)
		return err
	})
}

// List returns every catalogued chart ordered by title.
func (c *Catalog) List() ([]Entry, error) {
	rows, err := c.db.Query(
		"select hash, path, title, artist, notes, last_ms from charts order by title, artist")
	if nil != err {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Hash, &e.Path, &e.Title, &e.Artist, &e.Notes, &e.LastMs); nil != err {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
