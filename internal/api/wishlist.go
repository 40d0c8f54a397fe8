package api

import "context"

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

// WishlistList returns the product IDs on the current user's wishlist.
func (c *Client) WishlistList(ctx context.Context) ([]string, error) {
	var resp struct {
		Envelope
		Wishlist []string `json:"wishlist"`
	}
	if err := c.get(ctx, "/api/wishlist/list", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, remoteErr(resp.Envelope)
	}
	return resp.Wishlist, nil
}

// WishlistAdd puts a product on the wishlist.
func (c *Client) WishlistAdd(ctx context.Context, productID string) (string, error) {
	var resp Envelope
	if err := c.post(ctx, "/api/wishlist/add", wishlistRequest{ProductID: productID}, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", remoteErr(resp)
	}
	return resp.Message, nil
}

// WishlistRemove takes a product off the wishlist.
func (c *Client) WishlistRemove(ctx context.Context, productID string) (string, error) {
	var resp Envelope
	if err := c.post(ctx, "/api/wishlist/remove", wishlistRequest{ProductID: productID}, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", remoteErr(resp)
	}
	return resp.Message, nil
}
