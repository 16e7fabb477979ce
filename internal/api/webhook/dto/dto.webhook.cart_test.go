package webhookdto

import (
	"testing"

	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
)

func TestToModel_Minimal(t *testing.T) {
	input := AbandonedCartWebhookInput{
		Event:   "checkoutAbandoned",
		Sale:    SaleInput{ID: 526, Amount: 297.5},
		Client:  ClientInput{Name: "Adrian Barton", Email: "adrian.barton@greenholt.net"},
		Product: ProductInput{ID: 42, Name: "Curso de Marketing"},
	}

	cart := input.ToModel()

	if cart.EventName != "checkoutAbandoned" {
		t.Errorf("EventName = %q, muốn checkoutAbandoned", cart.EventName)
	}
	if cart.Sale.ID != 526 || cart.Sale.Amount != 297.5 {
		t.Errorf("Sale = %+v, muốn ID=526 Amount=297.5", cart.Sale)
	}
	if cart.CartStatus != cartmodels.CartStatusAbandoned {
		t.Errorf("CartStatus = %q, muốn %q", cart.CartStatus, cartmodels.CartStatusAbandoned)
	}
	if cart.ProductMetadata == nil || cart.ProposalMetadata == nil {
		t.Error("Metadata phải là slice rỗng, không được nil")
	}
	// Các phần tùy chọn không có thì giữ zero value
	if cart.Seller.Email != "" {
		t.Errorf("Seller.Email = %q, muốn rỗng", cart.Seller.Email)
	}
}

func TestToModel_OptionalSections(t *testing.T) {
	proposalID := int64(7)
	input := AbandonedCartWebhookInput{
		Event:   "cart_abandoned",
		Sale:    SaleInput{ID: 1, Amount: 10, ProposalID: &proposalID},
		Client:  ClientInput{Name: "A", Email: "a@b.com"},
		Product: ProductInput{ID: 2, Name: "P"},
		Seller:  &SellerInput{ID: 3, Name: "S", Email: "s@b.com"},
		Offer:   &OfferInput{Hash: "abc", Amount: 9.9},
		Contract: &ContractInput{
			ID:     "ct-1",
			Status: "active",
		},
	}

	cart := input.ToModel()

	if cart.Seller.Email != "s@b.com" {
		t.Errorf("Seller.Email = %q, muốn s@b.com", cart.Seller.Email)
	}
	if cart.Offer.Hash != "abc" {
		t.Errorf("Offer.Hash = %q, muốn abc", cart.Offer.Hash)
	}
	if cart.Contract.ID != "ct-1" {
		t.Errorf("Contract.ID = %q, muốn ct-1", cart.Contract.ID)
	}
	if cart.Sale.ProposalID == nil || *cart.Sale.ProposalID != 7 {
		t.Errorf("Sale.ProposalID = %v, muốn 7", cart.Sale.ProposalID)
	}
}
