package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"banking-console/models"
	"banking-console/pkg/views"
)

// NewCustomerForm and EditCustomerForm share one template; the edit
// variant pre-fills it from the backend.

func (h *Handler) NewCustomerForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "customer-form", views.CustomerFormPage{
		Page: h.page(r, "Add New Customer"),
	})
}

func (h *Handler) EditCustomerForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	customer, err := h.bankClient(r).GetCustomer(r.Context(), id)
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Loading customer %d failed: %v", id, err)
		http.Redirect(w, r, "/admin/customers?error="+url.QueryEscape("Could not load customer data for editing."), http.StatusSeeOther)
		return
	}

	h.renderer.Render(w, "customer-form", views.CustomerFormPage{
		Page:       h.page(r, "Edit Customer"),
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
	})
}

func (h *Handler) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	h.saveCustomer(w, r, 0)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.saveCustomer(w, r, id)
}

func (h *Handler) saveCustomer(w http.ResponseWriter, r *http.Request, id int64) {
	form := customerForm{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
	}

	title := "Add New Customer"
	if id != 0 {
		title = "Edit Customer"
	}

	if err := validate.Struct(form); err != nil {
		h.renderer.Render(w, "customer-form", views.CustomerFormPage{
			Page:        h.page(r, title),
			CustomerID:  id,
			Name:        form.Name,
			Email:       form.Email,
			FieldErrors: fieldErrors(err),
		})
		return
	}

	customer := models.Customer{Name: form.Name, Email: form.Email}
	client := h.bankClient(r)

	var err error
	var success string
	if id != 0 {
		_, err = client.UpdateCustomer(r.Context(), id, customer)
		success = "Customer has been successfully updated!"
	} else {
		_, err = client.SaveCustomer(r.Context(), customer)
		success = "Customer has been successfully saved!"
	}

	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Saving customer failed: %v", err)
		page := h.page(r, title)
		page.Error = errorMessage(err)
		h.renderer.Render(w, "customer-form", views.CustomerFormPage{
			Page:       page,
			CustomerID: id,
			Name:       form.Name,
			Email:      form.Email,
		})
		return
	}

	http.Redirect(w, r, "/admin/customers?success="+url.QueryEscape(success), http.StatusSeeOther)
}
