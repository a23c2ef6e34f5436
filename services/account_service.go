package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"banking-console/models"
	"banking-console/pkg/bank"
)

// AccountService assembles the customer-accounts view. The backend has
// no per-customer filter endpoint, so the full account list is fetched
// and narrowed here.
type AccountService struct {
	client *bank.Client
}

func NewAccountService(client *bank.Client) *AccountService {
	return &AccountService{client: client}
}

// CustomerAccounts fetches the customer and the account list in
// parallel, then keeps only the accounts owned by that customer.
func (s *AccountService) CustomerAccounts(ctx context.Context, customerID int64) (*models.Customer, []models.BankAccount, error) {
	var (
		customer *models.Customer
		accounts []models.BankAccount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.client.GetCustomer(gctx, customerID)
		if err != nil {
			return fmt.Errorf("get customer %d: %w", customerID, err)
		}
		customer = c
		return nil
	})
	g.Go(func() error {
		all, err := s.client.ListAccounts(gctx)
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}
		accounts = all
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return customer, FilterAccountsByCustomer(accounts, customerID), nil
}

// FilterAccountsByCustomer keeps the accounts whose embedded customer
// matches the given id.
func FilterAccountsByCustomer(accounts []models.BankAccount, customerID int64) []models.BankAccount {
	filtered := []models.BankAccount{}
	for _, account := range accounts {
		if account.Customer != nil && account.Customer.ID == customerID {
			filtered = append(filtered, account)
		}
	}
	return filtered
}
