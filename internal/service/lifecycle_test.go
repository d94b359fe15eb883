package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foodygo/identity-server/internal/mocks"
	"github.com/foodygo/identity-server/internal/model"
	"github.com/foodygo/identity-server/internal/testutil"
)

func TestLifecycle_SoftDelete_CascadesToCustomer(t *testing.T) {
	accounts := mocks.NewAccountStore(t)
	customers := mocks.NewCustomerStore(t)
	l := NewLifecycle(accounts, customers, testutil.MakeNoopLogger())

	accounts.On("FindByID", mock.Anything, int64(7)).Return(model.Account{ID: 7, AccountState: model.StateActive}, nil)
	accounts.On("SetState", mock.Anything, int64(7), model.StateSuspended).Return(model.Account{ID: 7, AccountState: model.StateSuspended}, nil)
	customers.On("MarkDeletedByAccount", mock.Anything, int64(7)).Return(nil)

	account, err := l.SoftDelete(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, account.Deleted)
}

func TestLifecycle_SoftDelete_CustomerFailure(t *testing.T) {
	accounts := mocks.NewAccountStore(t)
	customers := mocks.NewCustomerStore(t)
	l := NewLifecycle(accounts, customers, testutil.MakeNoopLogger())

	accounts.On("FindByID", mock.Anything, int64(7)).Return(model.Account{ID: 7, AccountState: model.StateActive}, nil)
	accounts.On("SetState", mock.Anything, int64(7), model.StateSuspended).Return(model.Account{ID: 7, AccountState: model.StateSuspended}, nil)
	customers.On("MarkDeletedByAccount", mock.Anything, int64(7)).Return(errors.New("timeout"))

	_, err := l.SoftDelete(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer profile")
}

func TestLifecycle_Undelete_ActiveDoesNotWrite(t *testing.T) {
	accounts := mocks.NewAccountStore(t)
	l := NewLifecycle(accounts, mocks.NewCustomerStore(t), testutil.MakeNoopLogger())

	accounts.On("FindByID", mock.Anything, int64(7)).Return(model.Account{ID: 7, AccountState: model.StateActive}, nil)

	_, err := l.Undelete(context.Background(), 7)
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
	accounts.AssertNotCalled(t, "SetState", mock.Anything, mock.Anything, mock.Anything)
}

func TestLifecycle_Lock_StoreFailure(t *testing.T) {
	accounts := mocks.NewAccountStore(t)
	l := NewLifecycle(accounts, mocks.NewCustomerStore(t), testutil.MakeNoopLogger())

	accounts.On("FindByID", mock.Anything, int64(7)).Return(model.Account{ID: 7, AccountState: model.StateActive}, nil)
	accounts.On("SetState", mock.Anything, int64(7), model.AccountState{}).Return(model.Account{}, errors.New("timeout"))

	_, err := l.Lock(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to lock account")
}
