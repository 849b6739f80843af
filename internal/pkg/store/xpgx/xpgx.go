// Package xpgx wraps a pgx pool with helpers that execute squirrel
// builders directly and scan rows into db-tagged structs.
package xpgx

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sqlizer matches squirrel's query builders.
type Sqlizer interface {
	ToSql() (string, []interface{}, error)
}

type Pool interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	// Execx renders and executes a builder.
	Execx(ctx context.Context, q Sqlizer) (pgconn.CommandTag, error)
	// Getx scans the first row into a db-tagged struct pointer; no rows
	// yields pgx.ErrNoRows.
	Getx(ctx context.Context, dest interface{}, q Sqlizer) error
	// Selectx scans all rows into a pointer to a slice of structs or
	// struct pointers.
	Selectx(ctx context.Context, dest interface{}, q Sqlizer) error
	Close()
}

type pool struct {
	inner *pgxpool.Pool
}

func NewPool(inner *pgxpool.Pool) Pool {
	return &pool{inner: inner}
}

func (p *pool) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return p.inner.Exec(ctx, sql, args...)
}

func (p *pool) Execx(ctx context.Context, q Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("to sql: %w", err)
	}

	return p.inner.Exec(ctx, sql, args...)
}

func (p *pool) Getx(ctx context.Context, dest interface{}, q Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("to sql: %w", err)
	}

	rows, err := p.inner.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}

	if err := scanRow(rows, reflect.ValueOf(dest).Elem()); err != nil {
		return err
	}

	return rows.Err()
}

func (p *pool) Selectx(ctx context.Context, dest interface{}, q Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("to sql: %w", err)
	}

	slice := reflect.ValueOf(dest).Elem()
	elemType := slice.Type().Elem()

	rows, err := p.inner.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		elem := reflect.New(derefType(elemType)).Elem()
		if err := scanRow(rows, elem); err != nil {
			return err
		}

		if elemType.Kind() == reflect.Ptr {
			slice.Set(reflect.Append(slice, elem.Addr()))
		} else {
			slice.Set(reflect.Append(slice, elem))
		}
	}

	return rows.Err()
}

func (p *pool) Close() {
	p.inner.Close()
}

func derefType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// scanRow matches result columns to struct fields by their db tag.
// Columns without a matching field are discarded.
func scanRow(rows pgx.Rows, structVal reflect.Value) error {
	byTag := map[string]interface{}{}
	collectFields(structVal, byTag)

	descs := rows.FieldDescriptions()
	targets := make([]interface{}, len(descs))
	for i, d := range descs {
		if ptr, ok := byTag[string(d.Name)]; ok {
			targets[i] = ptr
		} else {
			targets[i] = new(interface{})
		}
	}

	return rows.Scan(targets...)
}

func collectFields(structVal reflect.Value, byTag map[string]interface{}) {
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(structVal.Field(i), byTag)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}

		byTag[tag] = structVal.Field(i).Addr().Interface()
	}
}
