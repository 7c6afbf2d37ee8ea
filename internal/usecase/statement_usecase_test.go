package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/bizledger/internal/domain"
	"github.com/iho/bizledger/internal/usecase"
	"github.com/iho/bizledger/internal/usecase/mocks"
)

func entry(id, customerID, day string, entryType domain.EntryType, amount string) *domain.Entry {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}

	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}

	return &domain.Entry{
		ID:         id,
		CustomerID: customerID,
		EntryDate:  date,
		Type:       entryType,
		Amount:     amt,
		CreatedAt:  date,
	}
}

func TestStatementUseCase_GetStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)

	customer := &domain.Customer{ID: "cust-1", Name: "Sharma Traders"}

	cache.EXPECT().Get(gomock.Any(), "statement:cust-1").Return(nil, errors.New("cache miss"))
	customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
	entryRepo.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return([]*domain.Entry{
		entry("e2", "cust-1", "2024-01-16", domain.EntryTypePayment, "5000"),
		entry("e1", "cust-1", "2024-01-01", domain.EntryTypeDebit, "1108.80"),
	}, nil)
	cache.EXPECT().Set(gomock.Any(), "statement:cust-1", gomock.Any(), 5*time.Minute).Return(nil)

	uc := usecase.NewStatementUseCase(entryRepo, customerRepo, cache, 5*time.Minute)

	output, err := uc.GetStatement(context.Background(), "cust-1")
	require.NoError(t, err)

	require.Len(t, output.Statement.Rows, 2)

	// Entries arrive unsorted; the engine orders them by date.
	require.Equal(t, "e1", output.Statement.Rows[0].Entry.ID)

	final, _ := decimal.NewFromString("-3891.20")
	require.True(t, output.Statement.Balance().Equal(final),
		"expected -3891.20, got %s", output.Statement.Balance())
	require.False(t, output.Statement.IsDebtor())
}

func TestStatementUseCase_GetStatement_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)

	cached := &usecase.StatementOutput{
		Customer:  &domain.Customer{ID: "cust-1", Name: "Sharma Traders"},
		Statement: domain.ComputeStatement([]*domain.Entry{entry("e1", "cust-1", "2024-01-01", domain.EntryTypeDebit, "100")}),
	}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	cache.EXPECT().Get(gomock.Any(), "statement:cust-1").Return(data, nil)

	uc := usecase.NewStatementUseCase(entryRepo, customerRepo, cache, time.Minute)

	output, err := uc.GetStatement(context.Background(), "cust-1")
	require.NoError(t, err)
	require.True(t, output.Statement.Balance().Equal(decimal.NewFromInt(100)))
}

func TestStatementUseCase_GetStatement_UnknownCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)

	customerRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrCustomerNotFound)

	uc := usecase.NewStatementUseCase(entryRepo, customerRepo, nil, 0)

	_, err := uc.GetStatement(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestStatementUseCase_GetStatement_EmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)

	customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(&domain.Customer{ID: "cust-1"}, nil)
	entryRepo.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return(nil, nil)

	uc := usecase.NewStatementUseCase(entryRepo, customerRepo, nil, 0)

	output, err := uc.GetStatement(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Empty(t, output.Statement.Rows)
	require.True(t, output.Statement.Balance().IsZero())
}

func TestStatementUseCase_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)

	customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(&domain.Customer{ID: "cust-1"}, nil)
	entryRepo.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return([]*domain.Entry{
		entry("e1", "cust-1", "2024-01-01", domain.EntryTypeOrder, "300"),
		entry("e2", "cust-1", "2024-01-05", domain.EntryTypePayment, "120"),
	}, nil)

	uc := usecase.NewStatementUseCase(entryRepo, customerRepo, nil, 0)

	balance, err := uc.GetBalance(context.Background(), "cust-1")
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(180)), "got %s", balance)
}

func TestStatementUseCase_ListBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)

	customerRepo.EXPECT().List(gomock.Any(), 1000, 0).Return([]*domain.Customer{
		{ID: "cust-1", Name: "Sharma Traders"},
		{ID: "cust-2", Name: "Verma Stores"},
		{ID: "cust-3", Name: "No Activity"},
	}, nil)
	entryRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Entry{
		entry("e1", "cust-1", "2024-01-01", domain.EntryTypeDebit, "100"),
		entry("e2", "cust-2", "2024-01-01", domain.EntryTypeOpeningBalance, "-50"),
		entry("e3", "cust-1", "2024-01-02", domain.EntryTypePayment, "30"),
	}, nil)

	uc := usecase.NewStatementUseCase(entryRepo, customerRepo, nil, 0)

	balances, err := uc.ListBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 3)

	require.True(t, balances[0].Balance.Equal(decimal.NewFromInt(70)), "cust-1: %s", balances[0].Balance)
	require.True(t, balances[1].Balance.Equal(decimal.NewFromInt(-50)), "cust-2: %s", balances[1].Balance)
	require.True(t, balances[2].Balance.IsZero(), "cust-3: %s", balances[2].Balance)
}
