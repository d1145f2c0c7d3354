package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/ledger"
	"github.com/avc/tailor-ledger/internal/repository/memory"
)

// TransferService реализует переводы между под-балансами одного
// пользователя и между кошельками двух пользователей
type TransferService struct {
	userRepo domain.UserRepository
}

// NewTransferService создает новый TransferService
func NewTransferService(userRepo domain.UserRepository) *TransferService {
	return &TransferService{
		userRepo: userRepo,
	}
}

// Transfer переводит amount из source-отсека отправителя в dest-отсек
// получателя. Совпадающие senderID и receiverID означают перевод между
// собственными отсеками. Проверка баланса и запись результата выполняются
// в одной критической секции: параллельные переводы от одного отправителя
// не видят общий снимок баланса. Перевод не выполняется частично: при
// любой ошибке состояние кошельков не меняется.
func (s *TransferService) Transfer(ctx context.Context, senderID, receiverID string, amount float64, source, dest domain.Compartment) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	now := time.Now()
	isSelf := receiverID == senderID

	ids := []string{senderID}
	if !isSelf {
		ids = append(ids, receiverID)
	}

	err := s.userRepo.Apply(ctx, ids, func(users []*domain.UserProfile) error {
		sender := users[0]
		receiver := users[len(users)-1]

		// Оба отсека проверяются до каких-либо изменений
		balance, err := sender.Wallet.Balance(source)
		if err != nil {
			return err
		}
		if _, err := receiver.Wallet.Balance(dest); err != nil {
			return err
		}
		if balance < amount {
			return domain.ErrInsufficientBalance
		}

		if isSelf {
			return selfTransfer(sender, amount, source, dest, now)
		}
		return p2pTransfer(sender, receiver, amount, source, dest, now)
	})
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrInsufficientBalance) || errors.Is(err, domain.ErrUnknownCompartment) {
			return err
		}
		return fmt.Errorf("transfer service: failed to transfer %s -> %s: %w", senderID, receiverID, err)
	}
	return nil
}

// selfTransfer перемещает средства между отсеками одного кошелька.
// Итоговый порядок журнала: [CREDIT, DEBIT, ...старые записи]
func selfTransfer(user *domain.UserProfile, amount float64, source, dest domain.Compartment, now time.Time) error {
	wallet, err := ledger.Debit(user.Wallet, source, amount, fmt.Sprintf("Self Transfer to %s", dest), now)
	if err != nil {
		return err
	}
	wallet, err = ledger.Credit(wallet, dest, amount, fmt.Sprintf("Transfer from %s", source), now)
	if err != nil {
		return err
	}
	user.Wallet = wallet
	return nil
}

// p2pTransfer перемещает средства между кошельками двух пользователей
func p2pTransfer(sender, receiver *domain.UserProfile, amount float64, source, dest domain.Compartment, now time.Time) error {
	senderWallet, err := ledger.Debit(sender.Wallet, source, amount, fmt.Sprintf("Transfer to %s", receiver.Name), now)
	if err != nil {
		return err
	}
	receiverWallet, err := ledger.Credit(receiver.Wallet, dest, amount, fmt.Sprintf("Received from %s", sender.Name), now)
	if err != nil {
		return err
	}
	sender.Wallet = senderWallet
	receiver.Wallet = receiverWallet
	return nil
}
