package api

import "context"

type cartAddRequest struct {
	ItemID string `json:"itemId"`
	Size   string `json:"size"`
}

type cartUpdateRequest struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// CartAdd persists a single-unit increment of a cart line on the user record.
func (c *Client) CartAdd(ctx context.Context, itemID, size string) (string, error) {
	var resp Envelope
	if err := c.post(ctx, "/api/cart/add", cartAddRequest{ItemID: itemID, Size: size}, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", remoteErr(resp)
	}
	return resp.Message, nil
}

// CartUpdate persists a direct quantity set; zero marks the line removed.
func (c *Client) CartUpdate(ctx context.Context, itemID, size string, quantity int) (string, error) {
	var resp Envelope
	in := cartUpdateRequest{ItemID: itemID, Size: size, Quantity: quantity}
	if err := c.post(ctx, "/api/cart/update", in, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", remoteErr(resp)
	}
	return resp.Message, nil
}
