// Package history persists a log of evaluated commands, grounded on the
// bbolt-backed sequence/cursor idiom of the teacher's command-history
// store, adapted from one-bucket-of-strings to one-bucket-of-gob-encoded
// evaluation records (SPEC_FULL.md §4.11).
package history

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"

	bolt "go.etcd.io/bbolt"

	"tcl9.dev/pickle/pkg/interp"
)

var bucketCmds = []byte("cmds")

// ErrNoEntry is returned when a requested sequence number has no record.
var ErrNoEntry = errors.New("history: no such entry")

// Entry is one evaluated command (SPEC_FULL.md §4.11).
type Entry struct {
	Seq    int
	Text   string
	Code   int
	Result string
}

// Store is a history log backed by a bbolt database file.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCmds)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Append records one evaluation, returning its assigned sequence number.
func (s *Store) Append(text string, code int, result string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmds)
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		data, err := marshalEntry(Entry{Seq: int(seq), Text: text, Code: code, Result: result})
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	return int(seq), err
}

// Range returns every entry with sequence number in [from, upto).
func (s *Store) Range(from, upto int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmds)
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			e, err := unmarshalEntry(v)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	return entries, err
}

// Last returns up to the n most recently appended entries, oldest first.
func (s *Store) Last(n int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmds)
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(entries) < n; k, v = c.Prev() {
			e, err := unmarshalEntry(v)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Entry looks up a single record by sequence number.
func (s *Store) Entry(seq int) (Entry, error) {
	var e Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmds)
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoEntry
		}
		var err error
		e, err = unmarshalEntry(v)
		return err
	})
	return e, err
}

// Register installs the `history` built-in against i, backed by s. It is a
// host-level registration, not a core one: the evaluator has no concept of
// persistence (SPEC_FULL.md §9).
func Register(i *interp.Interp, s *Store) error {
	return i.Register("history", func(i *interp.Interp, argv []string, priv interface{}) interp.Code {
		n := 10
		if len(argv) == 2 {
			v, err := i.ParseInt(argv[1])
			if err != nil {
				return i.SetResultError(err.Error())
			}
			n = int(v)
		} else if len(argv) != 1 {
			return i.SetResultErrorArity(argv[0], 1, argv)
		}
		entries, err := s.Last(n)
		if err != nil {
			return i.SetResultError(err.Error())
		}
		out := ""
		for idx, e := range entries {
			if idx > 0 {
				out += "\n"
			}
			out += itoaHistory(e.Seq) + ": " + e.Text
		}
		return i.ResultOK(out)
	}, nil)
}

func itoaHistory(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

func marshalEntry(e Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalEntry(data []byte) (Entry, error) {
	var e Entry
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&e)
	return e, err
}
