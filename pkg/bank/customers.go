package bank

import (
	"context"
	"fmt"
	"net/url"

	"banking-console/models"
)

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.get(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) SearchCustomers(ctx context.Context, keyword string) ([]models.Customer, error) {
	var customers []models.Customer
	path := "/customers/search?keyword=" + url.QueryEscape(keyword)
	if err := c.get(ctx, path, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := c.get(ctx, fmt.Sprintf("/customers/%d", id), &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) SaveCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	var saved models.Customer
	if err := c.postJSON(ctx, "/customers", customer, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, customer models.Customer) (*models.Customer, error) {
	var updated models.Customer
	if err := c.putJSON(ctx, fmt.Sprintf("/customers/%d", id), customer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/customers/%d", id))
}
