package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/confsearch/core"
	"github.com/poiesic/confsearch/storage"
)

// ProgramRepository implements storage.ProgramRepository for BadgerDB.
type ProgramRepository struct {
	backend *Backend
}

var _ storage.ProgramRepository = (*ProgramRepository)(nil)

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(backend *Backend) (storage.ProgramRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &ProgramRepository{backend: backend}, nil
}

// Close is a no-op; the underlying backend is owned by the caller.
func (r *ProgramRepository) Close() error {
	return nil
}

// PutProgram stores a full conference program, replacing any previous one.
func (r *ProgramRepository) PutProgram(ctx context.Context, conference *core.Conference) error {
	if err := core.ValidateConference(conference); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := deletePrefix(tx, []byte(sessionPrefix+":")); err != nil {
			return err
		}
		if err := deletePrefix(tx, []byte(sessionIDPrefix+":")); err != nil {
			return err
		}

		info := storage.ProgramInfo{
			Name:          conference.ConferenceName,
			Dates:         conference.ConferenceDates,
			Location:      conference.Location,
			Days:          make([]storage.DayInfo, 0, len(conference.Days)),
			TotalSessions: conference.SessionCount(),
			TotalPapers:   conference.PaperCount(),
		}

		for dayIndex, day := range conference.Days {
			info.Days = append(info.Days, storage.DayInfo{
				Date:      day.Date,
				DayOfWeek: day.DayOfWeek,
			})

			for sessionIndex := range day.Sessions {
				session := &day.Sessions[sessionIndex]
				key := makeSessionKey(uint32(dayIndex), uint32(sessionIndex))
				if err := tx.Set(key, storage.MarshalSession(session)); err != nil {
					return err
				}

				// Secondary lookup by content ID of the internal string id
				id := core.IDFromContent(session.SessionIDInternal)
				if err := tx.Set(makeSessionIDKey(id), key); err != nil {
					return err
				}
			}
		}

		if err := tx.Set(makeProgramInfoKey(), storage.MarshalProgramInfo(&info)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Loaded reports whether a program has been stored.
func (r *ProgramRepository) Loaded(ctx context.Context) (bool, error) {
	loaded := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeProgramInfoKey())
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		loaded = true
		return nil
	}, false)
	return loaded, err
}

// ProgramInfo returns the stored program metadata.
func (r *ProgramRepository) ProgramInfo(ctx context.Context) (*storage.ProgramInfo, error) {
	var info *storage.ProgramInfo
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProgramInfoKey())
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotLoaded
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			info, err = storage.UnmarshalProgramInfo(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// GetProgram reassembles the full conference tree from the stored records.
func (r *ProgramRepository) GetProgram(ctx context.Context) (*core.Conference, error) {
	info, err := r.ProgramInfo(ctx)
	if err != nil {
		return nil, err
	}

	conference := &core.Conference{
		ConferenceName:  info.Name,
		ConferenceDates: info.Dates,
		Location:        info.Location,
		Days:            make([]core.Day, len(info.Days)),
	}
	for i, day := range info.Days {
		conference.Days[i] = core.Day{Date: day.Date, DayOfWeek: day.DayOfWeek}
	}

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			dayIndex, _, err := parseSessionKey(item.Key())
			if err != nil {
				return err
			}
			if int(dayIndex) >= len(conference.Days) {
				return storage.ErrSerializationFailed
			}

			var session *core.Session
			if err := item.Value(func(val []byte) error {
				var err error
				session, err = storage.UnmarshalSession(val)
				return err
			}); err != nil {
				return err
			}

			day := &conference.Days[dayIndex]
			day.Sessions = append(day.Sessions, *session)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return conference, nil
}

// ScanSessions iterates all sessions in corpus order. Positional keys are
// big-endian, so plain key iteration is already day-major corpus order.
func (r *ProgramRepository) ScanSessions(ctx context.Context, fn func(session *core.Session) error) error {
	loaded, err := r.Loaded(ctx)
	if err != nil {
		return err
	}
	if !loaded {
		return storage.ErrNotLoaded
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var session *core.Session
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				session, err = storage.UnmarshalSession(val)
				return err
			}); err != nil {
				return err
			}
			if err := fn(session); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// GetSession retrieves a single session by its content ID.
func (r *ProgramRepository) GetSession(ctx context.Context, id core.ID) (*core.Session, error) {
	var session *core.Session
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSessionIDKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		var positionKey []byte
		if err := item.Value(func(val []byte) error {
			positionKey = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}

		record, err := tx.Get(positionKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return record.Value(func(val []byte) error {
			session, err = storage.UnmarshalSession(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Overview returns the corpus-level accounting of the stored program.
func (r *ProgramRepository) Overview(ctx context.Context) (core.Overview, error) {
	info, err := r.ProgramInfo(ctx)
	if err != nil {
		return core.Overview{}, err
	}
	return core.Overview{
		Name:          info.Name,
		Dates:         info.Dates,
		Location:      info.Location,
		TotalDays:     len(info.Days),
		TotalSessions: info.TotalSessions,
		TotalPapers:   info.TotalPapers,
	}, nil
}

// deletePrefix removes all keys with the given prefix within the transaction.
func deletePrefix(tx *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
