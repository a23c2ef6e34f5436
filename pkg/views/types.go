package views

import "banking-console/models"

// SessionView carries the display-only identity shown in the navbar.
type SessionView struct {
	Username string
	Roles    []string
	IsAdmin  bool
}

// Page is embedded by every page view.
type Page struct {
	Title   string
	Session SessionView
	Error   string
	Success string
}

type LoginPage struct {
	Error string
}

type DashboardPage struct {
	Page
	Stats *models.DashboardStats
}

type CustomerListPage struct {
	Page
	Keyword   string
	Customers []models.Customer
}

type CustomerFormPage struct {
	Page
	CustomerID  int64
	Name        string
	Email       string
	FieldErrors map[string]string
}

// CustomerAccountsPage renders a customer's accounts plus at most one of
// the five operation dialogs, selected by Modal.
type CustomerAccountsPage struct {
	Page
	Customer        *models.Customer
	Accounts        []models.BankAccount
	Modal           string
	SelectedAccount string
	FieldErrors     map[string]string
}

type AccountHistoryPage struct {
	Page
	History  *models.AccountHistory
	PageSize int
	HasPrev  bool
	HasNext  bool
}

type ChangePasswordPage struct {
	Page
	FieldErrors map[string]string
}
