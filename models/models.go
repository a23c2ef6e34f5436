package models

import "time"

// Customer mirrors the backend CustomerDTO. The console holds transient
// copies for display and editing only; the backend owns the record.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BankAccount mirrors the backend BankAccountDTO. The backend returns a
// single polymorphic shape discriminated by Type: current accounts carry
// OverDraft, saving accounts carry InterestRate.
type BankAccount struct {
	ID               string    `json:"id"`
	Balance          float64   `json:"balance"`
	CreatedAt        time.Time `json:"createdAt"`
	Status           string    `json:"status"`
	Type             string    `json:"type"`
	Customer         *Customer `json:"customerDTO,omitempty"`
	OperatedByUserID string    `json:"operatedByUserId,omitempty"`

	OverDraft    float64 `json:"overDraft,omitempty"`
	InterestRate float64 `json:"interestRate,omitempty"`
}

type AccountOperation struct {
	ID            int64     `json:"id"`
	OperationDate time.Time `json:"operationDate"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
}

// AccountHistory is one page of operations for an account.
type AccountHistory struct {
	AccountID   string             `json:"accountId"`
	Balance     float64            `json:"balance"`
	CurrentPage int                `json:"currentPage"`
	TotalPages  int                `json:"totalPages"`
	PageSize    int                `json:"pageSize"`
	Operations  []AccountOperation `json:"accountOperationDTOS"`
}

// DashboardStats is a read-only aggregate snapshot computed by the backend.
type DashboardStats struct {
	TotalCustomers    int64            `json:"totalCustomers"`
	TotalAccounts     int64            `json:"totalAccounts"`
	AccountTypeCounts map[string]int64 `json:"accountTypeCounts"`
	TotalOperations   int64            `json:"totalOperations"`
}

type CreateCurrentAccountRequest struct {
	InitialBalance float64 `json:"initialBalance"`
	OverDraft      float64 `json:"overDraft"`
	CustomerID     int64   `json:"customerId"`
}

type CreateSavingAccountRequest struct {
	InitialBalance float64 `json:"initialBalance"`
	InterestRate   float64 `json:"interestRate"`
	CustomerID     int64   `json:"customerId"`
}

type DebitRequest struct {
	AccountID   string  `json:"accountId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type CreditRequest struct {
	AccountID   string  `json:"accountId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type TransferRequest struct {
	AccountSource      string  `json:"accountSource"`
	AccountDestination string  `json:"accountDestination"`
	Amount             float64 `json:"amount"`
	Description        string  `json:"description"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
