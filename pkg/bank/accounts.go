package bank

import (
	"context"
	"fmt"
	"net/url"

	"banking-console/models"
)

func (c *Client) ListAccounts(ctx context.Context) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	if err := c.get(ctx, "/accounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) GetAccount(ctx context.Context, accountID string) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := c.get(ctx, "/accounts/"+url.PathEscape(accountID), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountHistory returns one page of an account's operations.
func (c *Client) AccountHistory(ctx context.Context, accountID string, page, size int) (*models.AccountHistory, error) {
	var history models.AccountHistory
	path := fmt.Sprintf("/accounts/%s/pageOperations?page=%d&size=%d", url.PathEscape(accountID), page, size)
	if err := c.get(ctx, path, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

func (c *Client) SaveCurrentAccount(ctx context.Context, req models.CreateCurrentAccountRequest) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := c.postJSON(ctx, "/accounts/current", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) SaveSavingAccount(ctx context.Context, req models.CreateSavingAccountRequest) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := c.postJSON(ctx, "/accounts/saving", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) Debit(ctx context.Context, req models.DebitRequest) error {
	return c.postJSON(ctx, "/accounts/debit", req, nil)
}

func (c *Client) Credit(ctx context.Context, req models.CreditRequest) error {
	return c.postJSON(ctx, "/accounts/credit", req, nil)
}

func (c *Client) Transfer(ctx context.Context, req models.TransferRequest) error {
	return c.postJSON(ctx, "/accounts/transfer", req, nil)
}
