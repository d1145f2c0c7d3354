package domain

import "time"

// Role представляет роль пользователя в ателье
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleShowroom    Role = "SHOWROOM"
	RoleMaterial    Role = "MATERIAL"
	RoleMeasurement Role = "MEASUREMENT"
	RoleCutting     Role = "CUTTING"
	RoleShirtMaker  Role = "SHIRT_MAKER"
	RolePantMaker   Role = "PANT_MAKER"
	RoleCoatMaker   Role = "COAT_MAKER"
	RoleSafariMaker Role = "SAFARI_MAKER"
	RoleKajButton   Role = "KAJ_BUTTON"
	RolePress       Role = "PRESS"
	RoleDelivery    Role = "DELIVERY"
	RoleCustomer    Role = "CUSTOMER"
)

// Compartment представляет именованный под-баланс кошелька
type Compartment string

const (
	CompartmentMainBalance       Compartment = "mainBalance"
	CompartmentStitchingWallet   Compartment = "stitchingWallet"
	CompartmentWorkWallet        Compartment = "workWallet"
	CompartmentBookingWallet     Compartment = "bookingWallet"
	CompartmentWithdrawalWallet  Compartment = "withdrawalWallet"
	CompartmentPendingWithdrawal Compartment = "pendingWithdrawal"
	CompartmentPerformanceWallet Compartment = "performanceWallet"
	CompartmentUplineIncome      Compartment = "uplineIncome"
	CompartmentDownlineIncome    Compartment = "downlineIncome"
	CompartmentMagicIncome       Compartment = "magicIncome"
	CompartmentInvestmentWallet  Compartment = "investmentWallet"
	CompartmentROIIncome         Compartment = "roiIncome"
)

// TransactionType представляет направление движения средств
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

// Transaction представляет одну запись в журнале кошелька.
// Журнал упорядочен от новых записей к старым.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// UserWallet представляет кошелек пользователя: фиксированный набор
// под-балансов плюс журнал транзакций
type UserWallet struct {
	MainBalance       float64       `json:"mainBalance"`
	StitchingWallet   float64       `json:"stitchingWallet"`
	WorkWallet        float64       `json:"workWallet"`
	BookingWallet     float64       `json:"bookingWallet"`
	WithdrawalWallet  float64       `json:"withdrawalWallet"`
	PendingWithdrawal float64       `json:"pendingWithdrawal"`
	PerformanceWallet float64       `json:"performanceWallet"`
	UplineIncome      float64       `json:"uplineIncome"`
	DownlineIncome    float64       `json:"downlineIncome"`
	MagicIncome       float64       `json:"magicIncome"`
	InvestmentWallet  float64       `json:"investmentWallet"`
	ROIIncome         float64       `json:"roiIncome"`
	Transactions      []Transaction `json:"transactions"`
}

// Balance возвращает значение под-баланса.
// Неизвестный compartment — ошибка, а не нулевое значение.
func (w *UserWallet) Balance(c Compartment) (float64, error) {
	switch c {
	case CompartmentMainBalance:
		return w.MainBalance, nil
	case CompartmentStitchingWallet:
		return w.StitchingWallet, nil
	case CompartmentWorkWallet:
		return w.WorkWallet, nil
	case CompartmentBookingWallet:
		return w.BookingWallet, nil
	case CompartmentWithdrawalWallet:
		return w.WithdrawalWallet, nil
	case CompartmentPendingWithdrawal:
		return w.PendingWithdrawal, nil
	case CompartmentPerformanceWallet:
		return w.PerformanceWallet, nil
	case CompartmentUplineIncome:
		return w.UplineIncome, nil
	case CompartmentDownlineIncome:
		return w.DownlineIncome, nil
	case CompartmentMagicIncome:
		return w.MagicIncome, nil
	case CompartmentInvestmentWallet:
		return w.InvestmentWallet, nil
	case CompartmentROIIncome:
		return w.ROIIncome, nil
	default:
		return 0, ErrUnknownCompartment
	}
}

// SetBalance устанавливает значение под-баланса
func (w *UserWallet) SetBalance(c Compartment, value float64) error {
	switch c {
	case CompartmentMainBalance:
		w.MainBalance = value
	case CompartmentStitchingWallet:
		w.StitchingWallet = value
	case CompartmentWorkWallet:
		w.WorkWallet = value
	case CompartmentBookingWallet:
		w.BookingWallet = value
	case CompartmentWithdrawalWallet:
		w.WithdrawalWallet = value
	case CompartmentPendingWithdrawal:
		w.PendingWithdrawal = value
	case CompartmentPerformanceWallet:
		w.PerformanceWallet = value
	case CompartmentUplineIncome:
		w.UplineIncome = value
	case CompartmentDownlineIncome:
		w.DownlineIncome = value
	case CompartmentMagicIncome:
		w.MagicIncome = value
	case CompartmentInvestmentWallet:
		w.InvestmentWallet = value
	case CompartmentROIIncome:
		w.ROIIncome = value
	default:
		return ErrUnknownCompartment
	}
	return nil
}

// Clone возвращает глубокую копию кошелька
func (w *UserWallet) Clone() UserWallet {
	cp := *w
	cp.Transactions = make([]Transaction, len(w.Transactions))
	copy(cp.Transactions, w.Transactions)
	return cp
}

// UserProfile представляет пользователя системы
type UserProfile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Mobile       string     `json:"mobile"`
	Email        string     `json:"email"`
	Address      string     `json:"address"`
	ReferralCode string     `json:"referralCode"`
	ReferredBy   string     `json:"referredBy,omitempty"`
	PasswordHash string     `json:"-"` // Не отправляем хеш в JSON
	IsActive     bool       `json:"isActive"`
	Wallet       UserWallet `json:"wallet"`
}

// Clone возвращает глубокую копию профиля
func (u *UserProfile) Clone() *UserProfile {
	cp := *u
	cp.Wallet = u.Wallet.Clone()
	return &cp
}

// PaymentRequestType представляет тип платежной заявки
type PaymentRequestType string

const (
	PaymentRequestTypeDeposit    PaymentRequestType = "DEPOSIT"
	PaymentRequestTypeWithdrawal PaymentRequestType = "WITHDRAWAL"
)

// PaymentRequestStatus представляет статус платежной заявки
type PaymentRequestStatus string

const (
	PaymentRequestStatusPending  PaymentRequestStatus = "PENDING"
	PaymentRequestStatusApproved PaymentRequestStatus = "APPROVED"
	PaymentRequestStatusRejected PaymentRequestStatus = "REJECTED"
)

// PaymentRequest представляет заявку на пополнение или вывод.
// Имя и роль пользователя фиксируются на момент создания заявки.
type PaymentRequest struct {
	ID           string               `json:"id"`
	UserID       string               `json:"userId"`
	UserName     string               `json:"userName"`
	UserRole     Role                 `json:"userRole"`
	Amount       float64              `json:"amount"`
	Type         PaymentRequestType   `json:"type"`
	Mode         string               `json:"mode"`
	UTR          string               `json:"utr,omitempty"`
	SourceWallet Compartment          `json:"sourceWallet,omitempty"`
	Status       PaymentRequestStatus `json:"status"`
	Date         time.Time            `json:"date"`
}

// OrderStatus представляет этап жизненного цикла заказа
type OrderStatus string

const (
	OrderStatusBooked           OrderStatus = "BOOKED"
	OrderStatusMeasurementInbox OrderStatus = "MEASUREMENT_INBOX"
	OrderStatusCuttingInbox     OrderStatus = "CUTTING_INBOX"
	OrderStatusMakingInbox      OrderStatus = "MAKING_INBOX"
	OrderStatusFinishingInbox   OrderStatus = "FINISHING_INBOX"
	OrderStatusDeliveryInbox    OrderStatus = "DELIVERY_INBOX"
	OrderStatusCompleted        OrderStatus = "COMPLETED"
)

// ItemType представляет тип изделия
type ItemType string

const (
	ItemTypeShirt  ItemType = "SHIRT"
	ItemTypePant   ItemType = "PANT"
	ItemTypeCoat   ItemType = "COAT"
	ItemTypeSafari ItemType = "SAFARI"
)

// OrderItem представляет одну позицию заказа
type OrderItem struct {
	Type         ItemType `json:"type"`
	Rate         float64  `json:"rate"`
	Quantity     int      `json:"quantity"`
	Measurements string   `json:"measurements"`
	ClothLength  string   `json:"clothLength"`
}

// OrderEvent представляет запись в истории заказа
type OrderEvent struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Role      Role      `json:"role"`
}

// Order представляет заказ ателье.
// History только дописывается; Status и CurrentHandlerID меняются вместе.
type Order struct {
	ID                 string       `json:"id"`
	BillNumber         string       `json:"billNumber"`
	CustomerName       string       `json:"customerName"`
	Mobile             string       `json:"mobile"`
	ShowroomName       string       `json:"showroomName"`
	OrderDate          time.Time    `json:"orderDate"`
	DeliveryDate       time.Time    `json:"deliveryDate"`
	Status             OrderStatus  `json:"status"`
	CurrentHandlerID   string       `json:"currentHandlerId"`
	CurrentHandlerRole Role         `json:"currentHandlerRole"`
	BookingUserID      string       `json:"bookingUserId"`
	BookingUserName    string       `json:"bookingUserName"`
	TotalAmount        float64      `json:"totalAmount"`
	DeliveryCode       string       `json:"deliveryCode"`
	Items              []OrderItem  `json:"items"`
	History            []OrderEvent `json:"history"`
}

// Clone возвращает глубокую копию заказа
func (o *Order) Clone() *Order {
	cp := *o
	cp.Items = make([]OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	cp.History = make([]OrderEvent, len(o.History))
	copy(cp.History, o.History)
	return &cp
}

// ProductRate представляет сдельную расценку за операцию
type ProductRate struct {
	Product string  `json:"product"`
	Rate    float64 `json:"rate"`
}

// RoleCommission представляет процент комиссии роли
type RoleCommission struct {
	Role       Role    `json:"role"`
	Percentage float64 `json:"percentage"`
}

// IncomeSettings представляет настройки начислений: таблицы процентов
// по десяти уровням структуры, сдельные расценки и комиссии ролей
type IncomeSettings struct {
	UplineLevels    []float64        `json:"uplineLevels"`
	DownlineLevels  []float64        `json:"downlineLevels"`
	ProductRates    []ProductRate    `json:"productRates"`
	RoleCommissions []RoleCommission `json:"roleCommissions"`
}

// Clone возвращает глубокую копию настроек
func (s *IncomeSettings) Clone() *IncomeSettings {
	cp := &IncomeSettings{
		UplineLevels:    make([]float64, len(s.UplineLevels)),
		DownlineLevels:  make([]float64, len(s.DownlineLevels)),
		ProductRates:    make([]ProductRate, len(s.ProductRates)),
		RoleCommissions: make([]RoleCommission, len(s.RoleCommissions)),
	}
	copy(cp.UplineLevels, s.UplineLevels)
	copy(cp.DownlineLevels, s.DownlineLevels)
	copy(cp.ProductRates, s.ProductRates)
	copy(cp.RoleCommissions, s.RoleCommissions)
	return cp
}

// BonusInstruction представляет одну выплату в раздаче бонусов.
// Суммы уже рассчитаны вызывающей стороной по IncomeSettings.
type BonusInstruction struct {
	UserID      string  `json:"userId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	TotalCost   float64 `json:"totalCost"`
}
