package domain

import "context"

// UserRepository определяет методы для работы с пользователями.
// Apply выполняет проверку и изменение записей ids в одной критической
// секции: fn получает копии в порядке ids, изменения фиксируются все
// вместе и только при nil-ошибке.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*UserProfile, error)
	GetByMobile(ctx context.Context, mobile string) (*UserProfile, error)
	FirstByRole(ctx context.Context, role Role) (*UserProfile, error)
	List(ctx context.Context) ([]*UserProfile, error)
	Apply(ctx context.Context, ids []string, fn func(users []*UserProfile) error) error
}

// OrderRepository определяет методы для работы с заказами.
// Apply изменяет заказ в одной критической секции.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByBillNumber(ctx context.Context, billNumber string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListByHandler(ctx context.Context, handlerID string) ([]*Order, error)
	Save(ctx context.Context, order *Order) error
	Apply(ctx context.Context, id string, fn func(order *Order) error) error
	ReplaceWithChildren(ctx context.Context, parentID string, children []*Order) error
}

// PaymentRequestRepository определяет методы для работы с платежными заявками.
// Apply изменяет заявку в одной критической секции.
type PaymentRequestRepository interface {
	GetByID(ctx context.Context, id string) (*PaymentRequest, error)
	List(ctx context.Context) ([]*PaymentRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*PaymentRequest, error)
	Create(ctx context.Context, request *PaymentRequest) error
	Apply(ctx context.Context, id string, fn func(request *PaymentRequest) error) error
}

// SettingsRepository определяет методы для работы с настройками начислений
type SettingsRepository interface {
	Get(ctx context.Context) (*IncomeSettings, error)
	Update(ctx context.Context, settings *IncomeSettings) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Login(ctx context.Context, mobile, password string) (string, *UserProfile, error)
	QuickLogin(ctx context.Context, shortcut string) (string, *UserProfile, error)
}

// WalletService определяет методы чтения кошелька
type WalletService interface {
	GetWallet(ctx context.Context, userID string) (*UserWallet, error)
}

// TransferService определяет методы перевода средств
type TransferService interface {
	Transfer(ctx context.Context, senderID, receiverID string, amount float64, source, dest Compartment) error
}

// PaymentService определяет методы workflow платежных заявок
type PaymentService interface {
	CreateRequest(ctx context.Context, userID string, input CreatePaymentInput) (*PaymentRequest, error)
	ProcessRequest(ctx context.Context, requestID string, action PaymentRequestStatus) (*PaymentRequest, error)
	ListRequests(ctx context.Context, userID string) ([]*PaymentRequest, error)
	ListAllRequests(ctx context.Context) ([]*PaymentRequest, error)
}

// CreatePaymentInput представляет данные новой платежной заявки.
// ID, статус и дату назначает workflow, а не вызывающая сторона.
type CreatePaymentInput struct {
	Amount       float64            `json:"amount"`
	Type         PaymentRequestType `json:"type"`
	Mode         string             `json:"mode"`
	UTR          string             `json:"utr,omitempty"`
	SourceWallet Compartment        `json:"sourceWallet,omitempty"`
}

// BonusService определяет методы раздачи бонусов
type BonusService interface {
	Distribute(ctx context.Context, actorID string, instructions []BonusInstruction) error
}

// OrderService определяет методы работы с заказами
type OrderService interface {
	Track(ctx context.Context, billNumber string) (*Order, error)
	GetOrders(ctx context.Context) ([]*Order, error)
	UpsertOrder(ctx context.Context, order *Order) error
	Handover(ctx context.Context, input HandoverInput) (*Order, error)
	SplitOrder(ctx context.Context, parentID string, children []*Order) error
}

// HandoverInput представляет передачу заказа следующему этапу
type HandoverInput struct {
	OrderID     string      `json:"orderId"`
	Status      OrderStatus `json:"status"`
	HandlerID   string      `json:"handlerId"`
	HandlerRole Role        `json:"handlerRole"`
	Action      string      `json:"action"`
	ActorName   string      `json:"actorName"`
	ActorRole   Role        `json:"actorRole"`
}

// SettingsService определяет методы работы с настройками начислений
type SettingsService interface {
	Get(ctx context.Context) (*IncomeSettings, error)
	Update(ctx context.Context, actorRole Role, settings *IncomeSettings) error
}
