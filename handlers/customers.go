package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"banking-console/pkg/views"
)

// Customers lists customers, filtered by the search keyword. An empty
// keyword lists everything; the backend's search endpoint defaults it.
func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	page := views.CustomerListPage{
		Page:    h.page(r, "Customers"),
		Keyword: keyword,
	}

	customers, err := h.bankClient(r).SearchCustomers(r.Context(), keyword)
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Customer search failed: %v", err)
		page.Error = "Error searching customers: " + errorMessage(err)
		h.renderer.Render(w, "customers", page)
		return
	}

	page.Customers = customers
	h.renderer.Render(w, "customers", page)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.bankClient(r).DeleteCustomer(r.Context(), id); err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Deleting customer %d failed: %v", id, err)
		http.Redirect(w, r, "/admin/customers?error="+url.QueryEscape("Error deleting customer: "+errorMessage(err)), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/customers?success="+url.QueryEscape("Customer has been successfully deleted!"), http.StatusSeeOther)
}
