package api

import (
	"context"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type placeOrderRequest struct {
	Items   []domain.OrderLine `json:"items"`
	Address domain.Address     `json:"address"`
}

// PlaceOrderCOD submits a cash-on-delivery order.
func (c *Client) PlaceOrderCOD(ctx context.Context, items []domain.OrderLine, address domain.Address) (string, error) {
	var resp Envelope
	in := placeOrderRequest{Items: items, Address: address}
	if err := c.post(ctx, "/api/order/cod", in, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", remoteErr(resp)
	}
	return resp.Message, nil
}

// PlaceOrderStripe submits an online-payment order and returns the external
// payment page URL to navigate to. Settlement is confirmed out of band.
func (c *Client) PlaceOrderStripe(ctx context.Context, items []domain.OrderLine, address domain.Address) (string, error) {
	var resp struct {
		Envelope
		URL string `json:"url"`
	}
	in := placeOrderRequest{Items: items, Address: address}
	if err := c.post(ctx, "/api/order/stripe", in, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", remoteErr(resp.Envelope)
	}
	return resp.URL, nil
}

// MyOrders lists the current user's placed orders, newest first.
func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var resp struct {
		Envelope
		Orders []domain.Order `json:"orders"`
	}
	if err := c.post(ctx, "/api/order/userorders", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, remoteErr(resp.Envelope)
	}
	return resp.Orders, nil
}
