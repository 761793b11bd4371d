package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"vantage/internal/domain"
)

// Collection names arrive from callers as constants, but they are spliced
// into SQL, so gate them against the known set anyway.
var collections = map[string]bool{
	domain.CollectionRisks:    true,
	domain.CollectionIssues:   true,
	domain.CollectionProducts: true,
}

func table(collection string) (string, error) {
	if !collections[collection] {
		return "", fmt.Errorf("unknown collection %q", collection)
	}
	return collection, nil
}

// List scans the whole collection. The register recomputes everything from
// these snapshots per request, so there is deliberately no filtering here.
func (db *DB) List(ctx context.Context, collection string) ([]domain.Document, error) {
	tbl, err := table(collection)
	if err != nil {
		return nil, err
	}
	rows, err := db.Pool.Query(ctx, `SELECT id, doc FROM `+tbl+` ORDER BY created_at`)
	if err != nil {
		return nil, mapError("list "+collection, err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, mapError("list "+collection, err)
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			// One corrupt document must not block the batch; the
			// normalizer treats empty fields as best-effort input.
			fields = map[string]any{}
		}
		docs = append(docs, domain.Document{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list "+collection, err)
	}
	return docs, nil
}

func (db *DB) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	tbl, err := table(collection)
	if err != nil {
		return domain.Document{}, err
	}
	var raw []byte
	err = db.Pool.QueryRow(ctx, `SELECT doc FROM `+tbl+` WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Document{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Document{}, mapError("get "+collection, err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		fields = map[string]any{}
	}
	return domain.Document{ID: id, Fields: fields}, nil
}

func (db *DB) Create(ctx context.Context, collection string, doc domain.Document) error {
	tbl, err := table(collection)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc.Fields)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `INSERT INTO `+tbl+` (id, doc) VALUES ($1, $2)`, doc.ID, raw)
	return mapError("create "+collection, err)
}

func (db *DB) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	tbl, err := table(collection)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `UPDATE `+tbl+` SET doc = $2, updated_at = now() WHERE id = $1`, id, raw)
	if err != nil {
		return mapError("update "+collection, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) Delete(ctx context.Context, collection, id string) error {
	tbl, err := table(collection)
	if err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM `+tbl+` WHERE id = $1`, id)
	if err != nil {
		return mapError("delete "+collection, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Move deletes a document from one collection and creates its replacement
// in another as one transaction. Either both writes land or neither does;
// a half-converted record is never observable.
func (db *DB) Move(ctx context.Context, fromCollection, id, toCollection string, doc domain.Document) (err error) {
	fromTbl, err := table(fromCollection)
	if err != nil {
		return err
	}
	toTbl, err := table(toCollection)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc.Fields)
	if err != nil {
		return err
	}

	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return mapError("move", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = mapError("move", tx.Commit(ctx))
		}
	}()

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `DELETE FROM `+fromTbl+` WHERE id = $1`, id)
	if err != nil {
		err = mapError("move", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrNotFound
		return err
	}
	if _, err = tx.Exec(ctx, `INSERT INTO `+toTbl+` (id, doc) VALUES ($1, $2)`, doc.ID, raw); err != nil {
		err = mapError("move", err)
		return err
	}
	return nil
}

// mapError translates driver failures onto the domain taxonomy: auth
// failures become ErrPermissionDenied so the caller can present something
// actionable, everything else surfaces as a generic upstream failure.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "28000", "28P01", "42501":
			return fmt.Errorf("%s: %w", op, domain.ErrPermissionDenied)
		}
	}
	return &domain.UpstreamError{Op: op, Err: err}
}
