package duckdb

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/robrollback/metasv/internal/sv"
)

// WriteIntervals appends normalized intervals to the store in a single
// transaction.
func (s *Store) WriteIntervals(intervals []*sv.Interval) error {
	if len(intervals) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sv_intervals
		(chrom, start_pos, end_pos, sv_type, length, sources, cipos_lower, cipos_upper, wiggle, genotype)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, iv := range intervals {
		var ciposLower, ciposUpper sql.NullInt64
		if iv.CIPos != nil {
			ciposLower = sql.NullInt64{Int64: iv.CIPos.Lower, Valid: true}
			ciposUpper = sql.NullInt64{Int64: iv.CIPos.Upper, Valid: true}
		}
		var genotype sql.NullString
		if iv.Genotype != "" {
			genotype = sql.NullString{String: iv.Genotype, Valid: true}
		}

		_, err := stmt.Exec(iv.Chrom, iv.Start, iv.End, string(iv.Type), iv.Length,
			strings.Join(iv.Sources, ","), ciposLower, ciposUpper, iv.Wiggle, genotype)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert interval %s:%d: %w", iv.Chrom, iv.Start, err)
		}
	}

	return tx.Commit()
}

// CountIntervals returns the number of stored intervals.
func (s *Store) CountIntervals() (int64, error) {
	var count int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sv_intervals`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count intervals: %w", err)
	}
	return count, nil
}

// LookupRegion returns stored intervals overlapping [start, end] on the
// given chromosome, ordered by start position.
func (s *Store) LookupRegion(chrom string, start, end int64) ([]*sv.Interval, error) {
	rows, err := s.db.Query(`SELECT chrom, start_pos, end_pos, sv_type, length, sources,
			cipos_lower, cipos_upper, wiggle, genotype
		FROM sv_intervals
		WHERE chrom = ? AND start_pos <= ? AND end_pos >= ?
		ORDER BY start_pos`, chrom, end, start)
	if err != nil {
		return nil, fmt.Errorf("lookup region %s:%d-%d: %w", chrom, start, end, err)
	}
	defer rows.Close()

	var intervals []*sv.Interval
	for rows.Next() {
		iv := &sv.Interval{}
		var svType, sources string
		var ciposLower, ciposUpper sql.NullInt64
		var genotype sql.NullString

		err := rows.Scan(&iv.Chrom, &iv.Start, &iv.End, &svType, &iv.Length, &sources,
			&ciposLower, &ciposUpper, &iv.Wiggle, &genotype)
		if err != nil {
			return nil, fmt.Errorf("scan interval: %w", err)
		}

		iv.Type = sv.Type(svType)
		if sources != "" {
			iv.Sources = strings.Split(sources, ",")
		}
		if ciposLower.Valid && ciposUpper.Valid {
			iv.CIPos = &sv.ConfidenceInterval{Lower: ciposLower.Int64, Upper: ciposUpper.Int64}
		}
		if genotype.Valid {
			iv.Genotype = genotype.String
		}

		intervals = append(intervals, iv)
	}

	return intervals, rows.Err()
}
