package api

import (
	"context"
	"net/url"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type reviewAddRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// ReviewList fetches the reviews for one product.
func (c *Client) ReviewList(ctx context.Context, productID string) ([]domain.Review, error) {
	var resp struct {
		Envelope
		Reviews []domain.Review `json:"reviews"`
	}
	path := "/api/review/list?productId=" + url.QueryEscape(productID)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, remoteErr(resp.Envelope)
	}
	return resp.Reviews, nil
}

// ReviewAdd submits a review for a product.
func (c *Client) ReviewAdd(ctx context.Context, productID string, rating int, comment string) (string, error) {
	var resp Envelope
	in := reviewAddRequest{ProductID: productID, Rating: rating, Comment: comment}
	if err := c.post(ctx, "/api/review/add", in, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", remoteErr(resp)
	}
	return resp.Message, nil
}
