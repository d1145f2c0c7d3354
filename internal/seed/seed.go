// Package seed содержит стартовые данные системы: пользователей с
// реферальной структурой, образцы заказов, платежные заявки и настройки
// начислений. Коллекции живут только в памяти процесса.
package seed

import (
	"fmt"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/utils/password"
)

// Data содержит стартовые коллекции приложения
type Data struct {
	Users           []*domain.UserProfile
	Orders          []*domain.Order
	PaymentRequests []*domain.PaymentRequest
	IncomeSettings  *domain.IncomeSettings
}

// userSeed связывает профиль с демо-паролем; пароль хешируется при загрузке
type userSeed struct {
	user     domain.UserProfile
	password string
}

// Load собирает стартовые данные, хешируя демо-пароли переданным hasher
func Load(hasher password.Hasher) (*Data, error) {
	users := make([]*domain.UserProfile, 0, len(userSeeds))
	for _, s := range userSeeds {
		hash, err := hasher.Hash(s.password)
		if err != nil {
			return nil, fmt.Errorf("seed: failed to hash password for user %s: %w", s.user.ID, err)
		}
		u := s.user
		u.PasswordHash = hash
		users = append(users, &u)
	}

	return &Data{
		Users:           users,
		Orders:          orders(),
		PaymentRequests: paymentRequests(),
		IncomeSettings:  incomeSettings(),
	}, nil
}

var userSeeds = []userSeed{
	// Владелец
	{
		user: domain.UserProfile{
			ID: "owner_special", Name: "Lord's Owner", Role: domain.RoleAdmin,
			Mobile: "7791007911", Email: "owner@lords.com", Address: "Main HQ",
			ReferralCode: "OWNER", IsActive: true,
			Wallet: domain.UserWallet{MainBalance: 500000, DownlineIncome: 1500000},
		},
		password: "123156",
	},
	// Администратор (корень структуры)
	{
		user: domain.UserProfile{
			ID: "admin1", Name: "Super Admin", Role: domain.RoleAdmin,
			Mobile: "9999999999", Email: "admin@lords.com", Address: "HQ",
			ReferralCode: "ADMIN", IsActive: true,
			Wallet: domain.UserWallet{MainBalance: 50000, DownlineIncome: 150000},
		},
		password: "admin123",
	},
	// Шоурум
	{
		user: domain.UserProfile{
			ID: "sr1", Name: "Showroom Andheri", Role: domain.RoleShowroom,
			Mobile: "8888888888", Email: "andheri@lords.com", Address: "Andheri West",
			ReferralCode: "SR01", ReferredBy: "admin1", IsActive: true,
			Wallet: domain.UserWallet{StitchingWallet: 5000},
		},
		password: "shop123",
	},
	// Склад ткани
	{
		user: domain.UserProfile{
			ID: "mat1", Name: "Material Manager", Role: domain.RoleMaterial,
			Mobile: "7777777799", Email: "material@lords.com", Address: "Warehouse",
			ReferralCode: "MAT01", ReferredBy: "admin1", IsActive: true,
		},
		password: "mat123",
	},
	// Мерка
	{
		user: domain.UserProfile{
			ID: "meas1", Name: "Rahul Measurement", Role: domain.RoleMeasurement,
			Mobile: "7777777771", Email: "rahul@lords.com", Address: "Mumbai",
			ReferralCode: "ME01", ReferredBy: "sr1", IsActive: true,
			Wallet: domain.UserWallet{WorkWallet: 1200},
		},
		password: "meas123",
	},
	{
		user: domain.UserProfile{
			ID: "meas2", Name: "Vikram Measurement", Role: domain.RoleMeasurement,
			Mobile: "7777777772", Email: "vikram@lords.com", Address: "Pune",
			ReferralCode: "ME02", ReferredBy: "sr1", IsActive: true,
		},
		password: "meas123",
	},
	// Раскрой
	{
		user: domain.UserProfile{
			ID: "cut1", Name: "Suresh Cutter", Role: domain.RoleCutting,
			Mobile: "7777777773", Email: "suresh@lords.com", Address: "Mumbai",
			ReferralCode: "CU01", ReferredBy: "meas1", IsActive: true,
			Wallet: domain.UserWallet{WorkWallet: 2500},
		},
		password: "cut123",
	},
	// Пошив
	{
		user: domain.UserProfile{
			ID: "shirt1", Name: "Anil Shirt Maker", Role: domain.RoleShirtMaker,
			Mobile: "7777777774", Email: "anil@lords.com", Address: "Workshop 1",
			ReferralCode: "SM01", ReferredBy: "cut1", IsActive: true,
			Wallet: domain.UserWallet{WorkWallet: 5000},
		},
		password: "stitch123",
	},
	{
		user: domain.UserProfile{
			ID: "pant1", Name: "Sunil Pant Maker", Role: domain.RolePantMaker,
			Mobile: "7777777775", Email: "sunil@lords.com", Address: "Workshop 1",
			ReferralCode: "PM01", ReferredBy: "cut1", IsActive: true,
			Wallet: domain.UserWallet{WorkWallet: 4200},
		},
		password: "stitch123",
	},
	{
		user: domain.UserProfile{
			ID: "coat1", Name: "Raj Coat Maker", Role: domain.RoleCoatMaker,
			Mobile: "7777777776", Email: "raj@lords.com", Address: "Workshop 2",
			ReferralCode: "CM01", ReferredBy: "cut1", IsActive: true,
		},
		password: "stitch123",
	},
	{
		user: domain.UserProfile{
			ID: "safari1", Name: "Vijay Safari", Role: domain.RoleSafariMaker,
			Mobile: "7777777789", Email: "vijay@lords.com", Address: "Workshop 3",
			ReferralCode: "SM02", ReferredBy: "cut1", IsActive: true,
		},
		password: "stitch123",
	},
	// Отделка
	{
		user: domain.UserProfile{
			ID: "kaj1", Name: "Raju Kaj Button", Role: domain.RoleKajButton,
			Mobile: "7777777780", Email: "raju@lords.com", Address: "Workshop 2",
			ReferralCode: "KB01", ReferredBy: "shirt1", IsActive: true,
		},
		password: "kaj123",
	},
	{
		user: domain.UserProfile{
			ID: "press1", Name: "Mohan Press", Role: domain.RolePress,
			Mobile: "7777777777", Email: "mohan@lords.com", Address: "Workshop 2",
			ReferralCode: "PR01", ReferredBy: "shirt1", IsActive: true,
		},
		password: "press123",
	},
	// Доставка
	{
		user: domain.UserProfile{
			ID: "del1", Name: "Vikram Delivery", Role: domain.RoleDelivery,
			Mobile: "7777777778", Email: "vikram@lords.com", Address: "Logistics",
			ReferralCode: "DE01", ReferredBy: "press1", IsActive: true,
		},
		password: "del123",
	},
}

func orders() []*domain.Order {
	return []*domain.Order{
		{
			ID:                 "ord-001",
			BillNumber:         "BILL-8392",
			CustomerName:       "Amitabh Bachchan",
			Mobile:             "9876543210",
			ShowroomName:       "Showroom Andheri",
			OrderDate:          time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC),
			DeliveryDate:       time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
			Status:             domain.OrderStatusMeasurementInbox,
			CurrentHandlerID:   "meas1",
			CurrentHandlerRole: domain.RoleMeasurement,
			BookingUserID:      "sr1",
			BookingUserName:    "Showroom Andheri",
			TotalAmount:        1500,
			DeliveryCode:       "1234",
			Items: []domain.OrderItem{
				{Type: domain.ItemTypeShirt, Rate: 375, Quantity: 2, Measurements: "Chest 42, Length 29", ClothLength: "3.2 Mtr"},
				{Type: domain.ItemTypePant, Rate: 475, Quantity: 1, Measurements: "Waist 36, Length 40", ClothLength: "1.3 Mtr"},
			},
			History: []domain.OrderEvent{
				{Action: "Order Created", Timestamp: time.Date(2023, 10, 25, 10, 0, 0, 0, time.UTC), User: "Showroom Andheri", Role: domain.RoleShowroom},
				{Action: "Handover to Measurement", Timestamp: time.Date(2023, 10, 25, 10, 5, 0, 0, time.UTC), User: "Showroom Andheri", Role: domain.RoleShowroom},
			},
		},
		{
			ID:                 "ord-002",
			BillNumber:         "BILL-9921",
			CustomerName:       "Shahrukh Khan",
			Mobile:             "9988776655",
			ShowroomName:       "Showroom Andheri",
			OrderDate:          time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC),
			DeliveryDate:       time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
			Status:             domain.OrderStatusCuttingInbox,
			CurrentHandlerID:   "cut1",
			CurrentHandlerRole: domain.RoleCutting,
			BookingUserID:      "sr1",
			BookingUserName:    "Showroom Andheri",
			TotalAmount:        1200,
			DeliveryCode:       "5678",
			Items: []domain.OrderItem{
				{Type: domain.ItemTypeCoat, Rate: 1200, Quantity: 1, Measurements: "Standard 40 Regular", ClothLength: "2.0 Mtr"},
			},
			History: []domain.OrderEvent{
				{Action: "Order Created", Timestamp: time.Date(2023, 10, 26, 11, 0, 0, 0, time.UTC), User: "Showroom Andheri", Role: domain.RoleShowroom},
				{Action: "Measurement Completed", Timestamp: time.Date(2023, 10, 26, 12, 0, 0, 0, time.UTC), User: "Rahul Measurement", Role: domain.RoleMeasurement},
			},
		},
	}
}

func paymentRequests() []*domain.PaymentRequest {
	return []*domain.PaymentRequest{
		{
			ID: "pay-1", UserID: "shirt1", UserName: "Anil Shirt Maker", UserRole: domain.RoleShirtMaker,
			Type: domain.PaymentRequestTypeWithdrawal, Amount: 2000, Mode: "UPI",
			Status: domain.PaymentRequestStatusPending,
			Date:   time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "pay-2", UserID: "sr1", UserName: "Showroom Andheri", UserRole: domain.RoleShowroom,
			Type: domain.PaymentRequestTypeDeposit, Amount: 50000, Mode: "NEFT", UTR: "AXIS123456",
			Status: domain.PaymentRequestStatusPending,
			Date:   time.Date(2023, 10, 28, 0, 0, 0, 0, time.UTC),
		},
	}
}

func incomeSettings() *domain.IncomeSettings {
	// Уровни: 25%, 20%, 15%, 10%, далее по 5%
	levels := []float64{0.25, 0.20, 0.15, 0.10, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05}

	return &domain.IncomeSettings{
		UplineLevels:   append([]float64(nil), levels...),
		DownlineLevels: append([]float64(nil), levels...),
		ProductRates: []domain.ProductRate{
			{Product: "Shirt Stitching", Rate: 120},
			{Product: "Pant Stitching", Rate: 220},
			{Product: "Coat Stitching", Rate: 1200},
			{Product: "Shirt Cutting", Rate: 25},
			{Product: "Pant Cutting", Rate: 25},
			{Product: "Shirt Measurement", Rate: 20},
			{Product: "Pant Measurement", Rate: 30},
			{Product: "Shirt Finishing", Rate: 20},
			{Product: "Pant Finishing", Rate: 10},
			{Product: "Delivery", Rate: 10},
		},
		RoleCommissions: []domain.RoleCommission{
			{Role: domain.RoleShowroom, Percentage: 5},
			{Role: domain.RoleMaterial, Percentage: 9},
			{Role: domain.RoleMeasurement, Percentage: 0},
			{Role: domain.RoleCutting, Percentage: 0},
		},
	}
}
