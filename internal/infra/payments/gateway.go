package payments

import "context"

// CheckoutLink é o link de pagamento gerado para uma OS.
type CheckoutLink struct {
	PreferenceID string `json:"preference_id"`
	URL          string `json:"url"`
}

// Gateway abstrai o provedor de pagamentos; os handlers dependem só
// desta interface.
type Gateway interface {
	CreateCheckout(
		ctx context.Context,
		reference string,
		description string,
		amount float64,
	) (*CheckoutLink, error)
}
