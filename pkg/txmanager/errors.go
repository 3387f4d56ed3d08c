package txmanager

import "errors"

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrRetriesExhausted возвращается, когда транзакция не прошла после всех повторов
	ErrRetriesExhausted = errors.New("txmanager: serialization retries exhausted")
)
