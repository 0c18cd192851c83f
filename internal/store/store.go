// Package store persists fused echogram records in SQLite.
//
// Unset instrument parameters are stored as NULL so that a reloaded record
// keeps "absent" distinct from zero.
package store

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
	_ "modernc.org/sqlite"

	"github.com/cwbudde/algo-echogram/echogram"
	"github.com/cwbudde/algo-echogram/params"
)

// ErrNotFound is returned by Get for an unknown record ID.
var ErrNotFound = errors.New("store: record not found")

// paramColumns maps numeric Params fields to their column, in table order.
var paramColumns = []struct {
	field  string
	column string
}{
	{params.FieldCenterFrequency, "center_frequency"},
	{params.FieldF1, "f1"},
	{params.FieldF2, "f2"},
	{params.FieldPRF, "prf"},
	{params.FieldPulseLength, "pulse_length"},
	{params.FieldHiGain, "hi_gain"},
	{params.FieldLoGain, "lo_gain"},
	{params.FieldSamplingRate, "sampling_rate"},
	{params.FieldOnboardStacks, "onboard_stacks"},
	{params.FieldTXDelay, "tx_delay"},
	{params.FieldCoherentSums, "coherent_sums"},
	{params.FieldIncoherentSums, "incoherent_sums"},
}

// Store is a SQLite-backed record store. It implements pipeline.Sink.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and migrates it to the latest schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts rec and its diagnostics in one transaction.
func (s *Store) Save(ctx context.Context, rec *echogram.Record) error {
	if rec.Merged == nil {
		return &echogram.PreconditionError{Op: "store", Field: "merged", Detail: "record has no merged matrix"}
	}
	samples, soundings := rec.Merged.Dims()

	cols := []string{
		"id", "name", "created_at", "samples", "soundings", "splice_index", "cut_row", "instrument",
	}
	var instrument any
	if rec.Params.Instrument != nil {
		instrument = *rec.Params.Instrument
	}
	args := []any{
		rec.ID, rec.Name, rec.CreatedAt.UnixNano(), samples, soundings, rec.SpliceIndex, rec.CutRow, instrument,
	}
	for _, pc := range paramColumns {
		cols = append(cols, pc.column)
		if v, ok := rec.Params.Lookup(pc.field); ok {
			args = append(args, v)
		} else {
			args = append(args, nil)
		}
	}
	cols = append(cols, "merged", "time_axis")
	raw := rec.Merged.RawMatrix()
	if raw.Stride != soundings {
		raw = mat.DenseCopyOf(rec.Merged).RawMatrix()
	}
	args = append(args, encodeFloats(raw.Data), encodeFloats(rec.Time))

	query := fmt.Sprintf("INSERT INTO records (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("store: insert record %s: %w", rec.ID, err)
	}
	for i, d := range rec.Diagnostics {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO record_diagnostics (record_id, seq, message) VALUES (?, ?, ?)", rec.ID, i, d); err != nil {
			return fmt.Errorf("store: insert diagnostic: %w", err)
		}
	}
	return tx.Commit()
}

// Get loads the record with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*echogram.Record, error) {
	cols := []string{"name", "created_at", "samples", "soundings", "splice_index", "cut_row", "instrument"}
	for _, pc := range paramColumns {
		cols = append(cols, pc.column)
	}
	cols = append(cols, "merged", "time_axis")

	var (
		rec                  = &echogram.Record{ID: id}
		created              int64
		samples, soundings   int
		instrument           sql.NullString
		values               = make([]sql.NullFloat64, len(paramColumns))
		mergedBlob, timeBlob []byte
	)
	dest := []any{&rec.Name, &created, &samples, &soundings, &rec.SpliceIndex, &rec.CutRow, &instrument}
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &mergedBlob, &timeBlob)

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM records WHERE id = ?", strings.Join(cols, ", ")), id)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	rec.CreatedAt = time.Unix(0, created).UTC()
	if instrument.Valid {
		name := instrument.String
		rec.Params.Instrument = &name
	}
	for i, pc := range paramColumns {
		if values[i].Valid {
			rec.Params.Set(pc.field, values[i].Float64)
		}
	}

	data, err := decodeFloats(mergedBlob)
	if err != nil {
		return nil, err
	}
	if len(data) != samples*soundings || samples == 0 || soundings == 0 {
		return nil, fmt.Errorf("store: record %s: merged blob holds %d values for %dx%d", id, len(data), samples, soundings)
	}
	rec.Merged = mat.NewDense(samples, soundings, data)
	if rec.Time, err = decodeFloats(timeBlob); err != nil {
		return nil, err
	}

	rec.Diagnostics, err = s.diagnostics(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) diagnostics(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT message FROM record_diagnostics WHERE record_id = ? ORDER BY seq", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

// Summary describes a stored record without its sample data.
type Summary struct {
	ID          string
	Name        string
	CreatedAt   time.Time
	Samples     int
	Soundings   int
	SpliceIndex int
}

// List returns summaries of all records, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at, samples, soundings, splice_index FROM records ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			created int64
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &created, &sum.Samples, &sum.Soundings, &sum.SpliceIndex); err != nil {
			return nil, err
		}
		sum.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, sum)
	}
	return out, rows.Err()
}

// encodeFloats packs values as little-endian IEEE 754 doubles.
func encodeFloats(values []float64) []byte {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}

func decodeFloats(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("store: blob length %d is not a multiple of 8", len(buf))
	}
	out := make([]float64, len(buf)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return out, nil
}
