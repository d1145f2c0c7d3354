// Package ledger реализует чистые операции над кошельком: каждое изменение
// под-баланса создает ровно одну запись в журнале транзакций.
package ledger

import (
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/google/uuid"
)

// Credit увеличивает под-баланс и возвращает новый кошелек с транзакцией
// CREDIT в начале журнала. Исходный кошелек не изменяется.
func Credit(w domain.UserWallet, c domain.Compartment, amount float64, description string, date time.Time) (domain.UserWallet, error) {
	return apply(w, c, amount, domain.TransactionTypeCredit, description, date)
}

// Debit уменьшает под-баланс и возвращает новый кошелек с транзакцией
// DEBIT в начале журнала. Достаточность средств не проверяется: эта
// политика принадлежит вызывающей стороне, часть списаний (например,
// downlineIncome администратора при раздаче бонусов) может уходить в минус.
func Debit(w domain.UserWallet, c domain.Compartment, amount float64, description string, date time.Time) (domain.UserWallet, error) {
	return apply(w, c, -amount, domain.TransactionTypeDebit, description, date)
}

func apply(w domain.UserWallet, c domain.Compartment, delta float64, txType domain.TransactionType, description string, date time.Time) (domain.UserWallet, error) {
	next := w.Clone()

	balance, err := next.Balance(c)
	if err != nil {
		return w, err
	}
	if err := next.SetBalance(c, balance+delta); err != nil {
		return w, err
	}

	tx := domain.Transaction{
		ID:          uuid.New().String(),
		Amount:      amount(delta),
		Type:        txType,
		Description: description,
		Date:        date,
	}
	next.Transactions = append([]domain.Transaction{tx}, next.Transactions...)

	return next, nil
}

// amount возвращает абсолютное значение дельты: в журнале сумма
// всегда положительная, направление задает тип транзакции
func amount(delta float64) float64 {
	if delta < 0 {
		return -delta
	}
	return delta
}
