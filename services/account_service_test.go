package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-console/models"
	"banking-console/pkg/bank"
)

func customerRef(id int64) *models.Customer {
	return &models.Customer{ID: id, Name: "Customer", Email: "customer@example.com"}
}

func TestFilterAccountsByCustomer(t *testing.T) {
	accounts := []models.BankAccount{
		{ID: "a1", Customer: customerRef(7)},
		{ID: "a2", Customer: customerRef(8)},
		{ID: "a3", Customer: customerRef(7)},
		{ID: "a4", Customer: nil},
	}

	filtered := FilterAccountsByCustomer(accounts, 7)

	require.Len(t, filtered, 2)
	assert.Equal(t, "a1", filtered[0].ID)
	assert.Equal(t, "a3", filtered[1].ID)
}

func TestFilterAccountsByCustomer_NoMatches(t *testing.T) {
	accounts := []models.BankAccount{
		{ID: "a1", Customer: customerRef(8)},
	}

	assert.Empty(t, FilterAccountsByCustomer(accounts, 7))
}

func TestCustomerAccounts_FetchesAndFilters(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers/7", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Customer{ID: 7, Name: "Alice", Email: "alice@example.com"})
	})
	mux.HandleFunc("GET /accounts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.BankAccount{
			{ID: "acc-1", Type: "CurrentAccount", Customer: customerRef(7)},
			{ID: "acc-2", Type: "SavingAccount", Customer: customerRef(9)},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := NewAccountService(bank.NewClient(server.URL, nil))
	customer, accounts, err := svc.CustomerAccounts(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Alice", customer.Name)
	require.Len(t, accounts, 1)
	assert.Equal(t, "acc-1", accounts[0].ID)
}

func TestCustomerAccounts_BackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewAccountService(bank.NewClient(server.URL, nil))
	_, _, err := svc.CustomerAccounts(context.Background(), 7)
	assert.Error(t, err)
}
