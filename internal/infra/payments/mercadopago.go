package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type MercadoPagoGateway struct {
	client preference.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPagoGateway{
		client: preference.NewClient(cfg),
	}, nil
}

var _ Gateway = (*MercadoPagoGateway)(nil)

func (g *MercadoPagoGateway) CreateCheckout(
	ctx context.Context,
	reference string,
	description string,
	amount float64,
) (*CheckoutLink, error) {

	req := preference.Request{
		ExternalReference: reference,
		Items: []preference.ItemRequest{
			{
				Title:     description,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &CheckoutLink{
		PreferenceID: resp.ID,
		URL:          resp.InitPoint,
	}, nil
}
