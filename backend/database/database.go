package database

import (
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
	"vincit.fi/image-gallery/common/logger"
)

type Database struct {
	session db.Session
	dbPath  string
}

// NewDatabase prepares a database for the given file without opening
// it. Open must be called before the database can be used.
func NewDatabase(file string) *Database {
	return &Database{dbPath: file}
}

func NewInMemoryDatabase() *Database {
	logger.Info.Printf("Initializing in-memory database")
	var settings = sqlite.ConnectionURL{
		Database: "memory.db",
		Options: map[string]string{
			"mode": "memory",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		logger.Error.Fatal("Error opening database ", err)
	}

	database := &Database{session: session}
	if err := database.Migrate(); err != nil {
		logger.Error.Fatal("Error while running migrations ", err)
	}

	return database
}

func (s *Database) Open() error {
	if s.session != nil {
		return nil
	}

	logger.Info.Printf("Initializing database %s", s.dbPath)
	var settings = sqlite.ConnectionURL{
		Database: s.dbPath,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return err
	}

	s.session = session

	var version map[string]interface{}
	if err := s.session.SQL().Select(db.Func("sqlite_version")).One(&version); err == nil {
		logger.Info.Printf("Database initialized. Using SQLite version %s", version["sqlite_version()"])
	}

	return nil
}

func (s *Database) Session() db.Session {
	return s.session
}

func (s *Database) Migrate() error {
	logger.Info.Printf("Running migrations")
	if s.doesTablesExists() {
		logger.Debug.Print("Image table already exists")
		return nil
	}

	logger.Info.Print("Initial tables don't exist. Creating...")
	_, err := s.session.SQL().Exec(`
		CREATE TABLE image (
		    id TEXT PRIMARY KEY,
		    file_name TEXT,
		    category_id TEXT,
		    mime_type TEXT,
		    content BLOB,
		    favorite INTEGER
		)
	`)
	return err
}

func (s *Database) doesTablesExists() bool {
	rows, err := s.session.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name = 'image';
	`)

	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}

func (s *Database) Close() error {
	if s.session == nil {
		return nil
	}
	logger.Info.Printf("Closing database")
	return s.session.Close()
}
