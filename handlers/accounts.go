package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"banking-console/models"
	"banking-console/pkg/views"
	"banking-console/services"
)

// The customer-accounts page shows at most one dialog at a time.
var accountModals = map[string]bool{
	"current":  true,
	"saving":   true,
	"debit":    true,
	"credit":   true,
	"transfer": true,
}

func (h *Handler) CustomerAccounts(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	modal := r.URL.Query().Get("modal")
	if !accountModals[modal] {
		modal = ""
	}

	h.renderCustomerAccounts(w, r, customerID, modal, r.URL.Query().Get("account"), nil, "", "")
}

// renderCustomerAccounts loads the page data and renders it, optionally
// with one dialog open. Each render starts from a fresh form.
func (h *Handler) renderCustomerAccounts(w http.ResponseWriter, r *http.Request, customerID int64,
	modal, selectedAccount string, fieldErrs map[string]string, errMsg, successMsg string) {

	page := h.page(r, "Customer Accounts")
	if errMsg != "" {
		page.Error = errMsg
	}
	if successMsg != "" {
		page.Success = successMsg
	}

	svc := services.NewAccountService(h.bankClient(r))
	customer, accounts, err := svc.CustomerAccounts(r.Context(), customerID)
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Loading accounts for customer %d failed: %v", customerID, err)
		page.Error = "Failed to load accounts for this customer."
		h.renderer.Render(w, "customer-accounts", views.CustomerAccountsPage{Page: page})
		return
	}

	h.renderer.Render(w, "customer-accounts", views.CustomerAccountsPage{
		Page:            page,
		Customer:        customer,
		Accounts:        accounts,
		Modal:           modal,
		SelectedAccount: selectedAccount,
		FieldErrors:     fieldErrs,
	})
}

func (h *Handler) CreateCurrentAccount(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form := currentAccountForm{
		InitialBalance: parseFloat(r.FormValue("initialBalance")),
		OverDraft:      parseFloat(r.FormValue("overDraft")),
	}
	if err := validate.Struct(form); err != nil {
		h.renderCustomerAccounts(w, r, customerID, "current", "", fieldErrors(err), "", "")
		return
	}

	account, err := h.bankClient(r).SaveCurrentAccount(r.Context(), models.CreateCurrentAccountRequest{
		InitialBalance: form.InitialBalance,
		OverDraft:      form.OverDraft,
		CustomerID:     customerID,
	})
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Creating current account failed: %v", err)
		h.renderCustomerAccounts(w, r, customerID, "current", "", nil,
			"Failed to create current account: "+errorMessage(err), "")
		return
	}

	h.redirectToAccounts(w, r, customerID, fmt.Sprintf("Current account %s created successfully!", account.ID))
}

func (h *Handler) CreateSavingAccount(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form := savingAccountForm{
		InitialBalance: parseFloat(r.FormValue("initialBalance")),
		InterestRate:   parseFloat(r.FormValue("interestRate")),
	}
	if err := validate.Struct(form); err != nil {
		h.renderCustomerAccounts(w, r, customerID, "saving", "", fieldErrors(err), "", "")
		return
	}

	account, err := h.bankClient(r).SaveSavingAccount(r.Context(), models.CreateSavingAccountRequest{
		InitialBalance: form.InitialBalance,
		InterestRate:   form.InterestRate,
		CustomerID:     customerID,
	})
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Creating saving account failed: %v", err)
		h.renderCustomerAccounts(w, r, customerID, "saving", "", nil,
			"Failed to create saving account: "+errorMessage(err), "")
		return
	}

	h.redirectToAccounts(w, r, customerID, fmt.Sprintf("Saving account %s created successfully!", account.ID))
}

func (h *Handler) Debit(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	accountID := r.FormValue("accountId")

	form := operationForm{
		Amount:      parseFloat(r.FormValue("amount")),
		Description: r.FormValue("description"),
	}
	if err := validate.Struct(form); err != nil {
		h.renderCustomerAccounts(w, r, customerID, "debit", accountID, fieldErrors(err), "", "")
		return
	}

	err = h.bankClient(r).Debit(r.Context(), models.DebitRequest{
		AccountID:   accountID,
		Amount:      form.Amount,
		Description: form.Description,
	})
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Debit on account %s failed: %v", accountID, err)
		h.renderCustomerAccounts(w, r, customerID, "debit", accountID, nil,
			"Debit failed: "+errorMessage(err), "")
		return
	}

	h.redirectToAccounts(w, r, customerID,
		fmt.Sprintf("Debit of %.2f successful for account %s", form.Amount, accountID))
}

func (h *Handler) Credit(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	accountID := r.FormValue("accountId")

	form := operationForm{
		Amount:      parseFloat(r.FormValue("amount")),
		Description: r.FormValue("description"),
	}
	if err := validate.Struct(form); err != nil {
		h.renderCustomerAccounts(w, r, customerID, "credit", accountID, fieldErrors(err), "", "")
		return
	}

	err = h.bankClient(r).Credit(r.Context(), models.CreditRequest{
		AccountID:   accountID,
		Amount:      form.Amount,
		Description: form.Description,
	})
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Credit on account %s failed: %v", accountID, err)
		h.renderCustomerAccounts(w, r, customerID, "credit", accountID, nil,
			"Credit failed: "+errorMessage(err), "")
		return
	}

	h.redirectToAccounts(w, r, customerID,
		fmt.Sprintf("Credit of %.2f successful for account %s", form.Amount, accountID))
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	accountSource := r.FormValue("accountSource")

	form := transferForm{
		AccountDestination: r.FormValue("accountDestination"),
		Amount:             parseFloat(r.FormValue("amount")),
		Description:        r.FormValue("description"),
	}
	if form.Description == "" {
		form.Description = "Transfer"
	}
	if err := validate.Struct(form); err != nil {
		h.renderCustomerAccounts(w, r, customerID, "transfer", accountSource, fieldErrors(err), "", "")
		return
	}

	err = h.bankClient(r).Transfer(r.Context(), models.TransferRequest{
		AccountSource:      accountSource,
		AccountDestination: form.AccountDestination,
		Amount:             form.Amount,
		Description:        form.Description,
	})
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Transfer from %s to %s failed: %v", accountSource, form.AccountDestination, err)
		h.renderCustomerAccounts(w, r, customerID, "transfer", accountSource, nil,
			"Transfer failed: "+errorMessage(err), "")
		return
	}

	h.redirectToAccounts(w, r, customerID,
		fmt.Sprintf("Transfer of %.2f from %s to %s successful.", form.Amount, accountSource, form.AccountDestination))
}

// AccountOperations shows one page of an account's operation history.
func (h *Handler) AccountOperations(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("id")

	pageNum, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if pageNum < 0 {
		pageNum = 0
	}
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if size <= 0 {
		size = 5
	}

	page := h.page(r, "Account Operations")

	history, err := h.bankClient(r).AccountHistory(r.Context(), accountID, pageNum, size)
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Loading operations for account %s failed: %v", accountID, err)
		page.Error = "Failed to load account operations."
		h.renderer.Render(w, "account-operations", views.AccountHistoryPage{Page: page})
		return
	}

	h.renderer.Render(w, "account-operations", views.AccountHistoryPage{
		Page:     page,
		History:  history,
		PageSize: size,
		HasPrev:  history.CurrentPage > 0,
		HasNext:  history.CurrentPage < history.TotalPages-1,
	})
}

func (h *Handler) redirectToAccounts(w http.ResponseWriter, r *http.Request, customerID int64, success string) {
	http.Redirect(w, r,
		fmt.Sprintf("/admin/customer-accounts/%d?success=%s", customerID, url.QueryEscape(success)),
		http.StatusSeeOther)
}
