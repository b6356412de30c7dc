package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/project/studentlibrary/internal/log"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Paths locates the documents. An empty Loans path keeps the ledger in
// memory only.
type Paths struct {
	Books    string
	Students string
	Loans    string
}

var _ State = (*fileStorage)(nil)

// fileStorage owns the stores and mirrors each of them to a JSON document.
// A document is rewritten in full when its store changed since the last
// successful write.
type fileStorage struct {
	logger  *zap.Logger
	fs      afero.Fs
	paths   Paths
	catalog *catalogRepository
	roster  *rosterRepository
	ledger  *ledgerRepository
}

type document struct {
	path   string
	dirty  func() bool
	clean  func()
	encode func() ([]byte, error)
}

func NewFileStorage(logger *zap.Logger, fsys afero.Fs, paths Paths) *fileStorage {
	return &fileStorage{
		logger:  logger,
		fs:      fsys,
		paths:   paths,
		catalog: NewCatalog(),
		roster:  NewRoster(),
		ledger:  NewLedger(),
	}
}

func (s *fileStorage) Catalog() *catalogRepository {
	return s.catalog
}

func (s *fileStorage) Roster() *rosterRepository {
	return s.roster
}

func (s *fileStorage) Ledger() *ledgerRepository {
	return s.ledger
}

// Load reads every configured document. Missing and malformed documents
// give empty stores; only I/O failures are returned.
func (s *fileStorage) Load() error {
	data, err := s.read(s.paths.Books)
	if err != nil {
		return err
	}
	books, warnings, err := decodeCatalog(data)
	s.warn(s.paths.Books, warnings, err)
	s.catalog.reset(books)
	log.InfoLoadDocument(s.logger, "catalog loaded", s.paths.Books, len(books))

	data, err = s.read(s.paths.Students)
	if err != nil {
		return err
	}
	members, warnings, err := decodeRoster(data)
	s.warn(s.paths.Students, warnings, err)
	s.roster.reset(members)
	log.InfoLoadDocument(s.logger, "roster loaded", s.paths.Students, len(members))

	if s.paths.Loans == "" {
		return nil
	}
	data, err = s.read(s.paths.Loans)
	if err != nil {
		return err
	}
	entries, warnings, err := decodeLedger(data)
	s.warn(s.paths.Loans, warnings, err)
	s.ledger.reset(entries)
	log.InfoLoadDocument(s.logger, "ledger loaded", s.paths.Loans, len(entries))

	return nil
}

func (s *fileStorage) read(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can not read %s: %w", path, err)
	}
	return data, nil
}

func (s *fileStorage) warn(path string, warnings []decodeWarning, err error) {
	if err != nil {
		log.WarnLoadDocument(s.logger, "malformed document, starting empty", path, zap.Error(err))
	}
	for _, w := range warnings {
		log.WarnLoadDocument(s.logger, w.reason, path, zap.String("key", w.key))
	}
}

// Save writes every changed document. A failed write leaves its store dirty
// so the next Save retries it.
func (s *fileStorage) Save() error {
	var errs []error
	for _, doc := range s.documents() {
		if !doc.dirty() {
			continue
		}
		if doc.path == "" {
			doc.clean()
			continue
		}

		data, err := doc.encode()
		if err == nil {
			err = writeFile(s.fs, doc.path, data)
		}
		if log.ErrorSaveDocument(s.logger, err, "document not written, memory and disk differ", doc.path) {
			errs = append(errs, fmt.Errorf("%s: %w", doc.path, err))
			continue
		}
		doc.clean()
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", entity.ErrPersistence, errors.Join(errs...))
	}
	return nil
}

func (s *fileStorage) Snapshot() func() {
	restoreCatalog := s.catalog.Snapshot()
	restoreRoster := s.roster.Snapshot()
	restoreLedger := s.ledger.Snapshot()

	return func() {
		restoreCatalog()
		restoreRoster()
		restoreLedger()
	}
}

func (s *fileStorage) documents() []document {
	return []document{
		{
			path:   s.paths.Books,
			dirty:  s.catalog.isDirty,
			clean:  s.catalog.markClean,
			encode: func() ([]byte, error) { return encodeCatalog(s.catalog.Books()) },
		},
		{
			path:   s.paths.Students,
			dirty:  s.roster.isDirty,
			clean:  s.roster.markClean,
			encode: func() ([]byte, error) { return encodeRoster(s.roster.Members()) },
		},
		{
			path:   s.paths.Loans,
			dirty:  s.ledger.isDirty,
			clean:  s.ledger.markClean,
			encode: func() ([]byte, error) { return encodeLedger(s.ledger.all()) },
		},
	}
}

// writeFile replaces path with data through a temporary file in the same
// directory, so a failed write never truncates the previous document.
func writeFile(fsys afero.Fs, path string, data []byte) error {
	tmp, err := afero.TempFile(fsys, filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fsys.Remove(name)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = fsys.Remove(name)
		return err
	}
	if err = fsys.Rename(name, path); err != nil {
		_ = fsys.Remove(name)
		return err
	}
	return nil
}
