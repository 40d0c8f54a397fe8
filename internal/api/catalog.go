package api

import (
	"context"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

// ProductList fetches the full product catalog.
func (c *Client) ProductList(ctx context.Context) ([]domain.Product, error) {
	var resp struct {
		Envelope
		Products []domain.Product `json:"products"`
	}
	if err := c.get(ctx, "/api/product/list", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, remoteErr(resp.Envelope)
	}
	return resp.Products, nil
}

// CategoryList fetches all categories.
func (c *Client) CategoryList(ctx context.Context) ([]domain.Category, error) {
	var resp struct {
		Envelope
		Categories []domain.Category `json:"categories"`
	}
	if err := c.get(ctx, "/api/category/list", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, remoteErr(resp.Envelope)
	}
	return resp.Categories, nil
}
