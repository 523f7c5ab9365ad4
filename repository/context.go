package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ctxTxKeyType struct{}

type ctxReadonlyKeyType struct{}

var ctxTxKey = ctxTxKeyType{}
var ctxReadonlyKey = ctxReadonlyKeyType{}

type ctxTxValue struct {
	tx *sqlx.Tx
}

type ctxReadonlyValue struct {
	db *sqlx.DB
}

// InTransaction reports whether ctx carries a transaction started by Provider.Transact
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	return ok
}

// GetTx returns the transaction of ctx, writes and row locks must go through it
func GetTx(ctx context.Context) Transaction {
	value, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	if !ok {
		panic("repository: no transaction in context, wrap the call with Provider.Transact")
	}
	return value.tx
}

// GetReadonly returns the transaction of ctx if any, otherwise the database set by Provider.Readonly
func GetReadonly(ctx context.Context) Readonly {
	if value, ok := ctx.Value(ctxTxKey).(ctxTxValue); ok {
		return value.tx
	}

	value, ok := ctx.Value(ctxReadonlyKey).(ctxReadonlyValue)
	if !ok {
		panic("repository: no database in context, call Provider.Readonly first")
	}
	return value.db
}
