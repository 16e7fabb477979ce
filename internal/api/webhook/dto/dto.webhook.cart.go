// Package webhookdto chứa các DTO của domain webhook.
package webhookdto

import (
	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
)

// AbandonedCartWebhookInput là schema strict của entry point generic.
// Khác với entry point flexible (chấp nhận JSON gần như tùy ý và default mọi
// field thiếu), entry point này validate đầy đủ kiểu và field bắt buộc,
// payload sai schema bị reject kèm danh sách lỗi theo từng field.
type AbandonedCartWebhookInput struct {
	Event         string `json:"event" validate:"required"`
	Type          string `json:"type" validate:"omitempty,max=50"`
	OldStatus     string `json:"oldStatus" validate:"omitempty,max=50"`
	CurrentStatus string `json:"currentStatus" validate:"omitempty,max=50"`

	Contract *ContractInput `json:"contract" validate:"omitempty"`
	Sale     SaleInput      `json:"sale" validate:"required"`
	Client   ClientInput    `json:"client" validate:"required"`
	Product  ProductInput   `json:"product" validate:"required"`

	OfferName string       `json:"offerName" validate:"omitempty,max=200"`
	Offer     *OfferInput  `json:"offer" validate:"omitempty"`
	Seller    *SellerInput `json:"seller" validate:"omitempty"`

	Affiliate     map[string]interface{}   `json:"affiliate"`
	ProductMetas  []map[string]interface{} `json:"productMetas"`
	ProposalMetas []map[string]interface{} `json:"proposalMetas"`
}

// ContractInput là phần contract của payload strict
type ContractInput struct {
	ID               string `json:"id" validate:"omitempty,max=100"`
	StartDate        string `json:"startDate"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
	Status           string `json:"status" validate:"omitempty,max=50"`
	CurrentPeriodEnd string `json:"currentPeriodEnd"`
}

// SaleInput là phần sale của payload strict. ID và Amount là bắt buộc.
type SaleInput struct {
	ID           int64   `json:"id" validate:"required,min=1"`
	Type         string  `json:"type" validate:"omitempty,max=50"`
	Status       string  `json:"status" validate:"omitempty,max=50"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	SellerID     int64   `json:"sellerId" validate:"omitempty,min=0"`
	Installments int64   `json:"installments" validate:"omitempty,min=0"`
	Method       string  `json:"method" validate:"omitempty,max=50"`
	ClientID     int64   `json:"clientId" validate:"omitempty,min=0"`
	Amount       float64 `json:"amount" validate:"required,min=0"`
	ProposalID   *int64  `json:"proposalId"`
	Total        float64 `json:"total" validate:"omitempty,min=0"`
}

// ClientInput là phần client của payload strict. Email là bắt buộc.
type ClientInput struct {
	ID           int64  `json:"id" validate:"omitempty,min=0"`
	Name         string `json:"name" validate:"required,max=200,no_xss"`
	Email        string `json:"email" validate:"required,email"`
	Cellphone    string `json:"cellphone" validate:"omitempty,max=30"`
	Document     string `json:"document" validate:"omitempty,max=30"`
	CpfCnpj      string `json:"cpfCnpj" validate:"omitempty,max=30"`
	Zipcode      string `json:"zipcode" validate:"omitempty,max=20"`
	Street       string `json:"street" validate:"omitempty,max=200"`
	Number       string `json:"number" validate:"omitempty,max=20"`
	Complement   string `json:"complement" validate:"omitempty,max=200"`
	Neighborhood string `json:"neighborhood" validate:"omitempty,max=100"`
	City         string `json:"city" validate:"omitempty,max=100"`
	UF           string `json:"uf" validate:"omitempty,max=5"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ProductInput là phần product của payload strict. ID và Name là bắt buộc.
type ProductInput struct {
	ID              int64   `json:"id" validate:"required,min=1"`
	Name            string  `json:"name" validate:"required,max=300,no_xss"`
	Description     string  `json:"description" validate:"omitempty"`
	CategoryID      int64   `json:"categoryId" validate:"omitempty,min=0"`
	Stock           *int64  `json:"stock"`
	Type            string  `json:"type" validate:"omitempty,max=50"`
	Amount          float64 `json:"amount" validate:"omitempty,min=0"`
	Period          int64   `json:"period" validate:"omitempty,min=0"`
	ThankYouPage    *string `json:"thankYouPage"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
	SellerID        int64   `json:"sellerId" validate:"omitempty,min=0"`
	Slug            string  `json:"slug" validate:"omitempty,max=300"`
	Method          string  `json:"method" validate:"omitempty,max=50"`
	ProductTypeID   int64   `json:"productTypeId" validate:"omitempty,min=0"`
	StatusChangedAt string  `json:"statusChangedAt"`
	ProductID       int64   `json:"productId" validate:"omitempty,min=0"`
	Hash            string  `json:"hash" validate:"omitempty,max=100"`
}

// OfferInput là phần offer của payload strict
type OfferInput struct {
	Hash      string  `json:"hash" validate:"omitempty,max=100"`
	Amount    float64 `json:"amount" validate:"omitempty,min=0"`
	Method    string  `json:"method" validate:"omitempty,max=50"`
	Name      string  `json:"name" validate:"omitempty,max=200"`
	CreatedAt string  `json:"createdAt"`
}

// SellerInput là phần seller của payload strict
type SellerInput struct {
	ID        int64  `json:"id" validate:"omitempty,min=0"`
	Name      string `json:"name" validate:"omitempty,max=200,no_xss"`
	Email     string `json:"email" validate:"omitempty,email"`
	Cellphone string `json:"cellphone" validate:"omitempty,max=30"`
}

// ToModel chuyển DTO strict đã validate thành model canonical
func (in *AbandonedCartWebhookInput) ToModel() cartmodels.AbandonedCart {
	cart := cartmodels.AbandonedCart{
		EventType:      in.Type,
		EventName:      in.Event,
		PreviousStatus: in.OldStatus,
		CurrentStatus:  in.CurrentStatus,
		Sale: cartmodels.Sale{
			ID:           in.Sale.ID,
			Type:         in.Sale.Type,
			Status:       in.Sale.Status,
			CreatedAt:    in.Sale.CreatedAt,
			UpdatedAt:    in.Sale.UpdatedAt,
			SellerID:     in.Sale.SellerID,
			Installments: in.Sale.Installments,
			Method:       in.Sale.Method,
			ClientID:     in.Sale.ClientID,
			Amount:       in.Sale.Amount,
			ProposalID:   in.Sale.ProposalID,
			Total:        in.Sale.Total,
		},
		Client: cartmodels.Client{
			ID:           in.Client.ID,
			Name:         in.Client.Name,
			Email:        in.Client.Email,
			Cellphone:    in.Client.Cellphone,
			Document:     in.Client.Document,
			CpfCnpj:      in.Client.CpfCnpj,
			Zipcode:      in.Client.Zipcode,
			Street:       in.Client.Street,
			Number:       in.Client.Number,
			Complement:   in.Client.Complement,
			Neighborhood: in.Client.Neighborhood,
			City:         in.Client.City,
			UF:           in.Client.UF,
			CreatedAt:    in.Client.CreatedAt,
			UpdatedAt:    in.Client.UpdatedAt,
		},
		Product: cartmodels.Product{
			ID:              in.Product.ID,
			Name:            in.Product.Name,
			Description:     in.Product.Description,
			CategoryID:      in.Product.CategoryID,
			Stock:           in.Product.Stock,
			Type:            in.Product.Type,
			Amount:          in.Product.Amount,
			Period:          in.Product.Period,
			ThankYouPage:    in.Product.ThankYouPage,
			CreatedAt:       in.Product.CreatedAt,
			UpdatedAt:       in.Product.UpdatedAt,
			SellerID:        in.Product.SellerID,
			Slug:            in.Product.Slug,
			Method:          in.Product.Method,
			ProductTypeID:   in.Product.ProductTypeID,
			StatusChangedAt: in.Product.StatusChangedAt,
			ProductID:       in.Product.ProductID,
			Hash:            in.Product.Hash,
		},
		OfferName:        in.OfferName,
		Affiliate:        in.Affiliate,
		ProductMetadata:  in.ProductMetas,
		ProposalMetadata: in.ProposalMetas,
		CartStatus:       cartmodels.CartStatusAbandoned,
	}

	if in.Contract != nil {
		cart.Contract = cartmodels.Contract{
			ID:               in.Contract.ID,
			StartDate:        in.Contract.StartDate,
			CreatedAt:        in.Contract.CreatedAt,
			UpdatedAt:        in.Contract.UpdatedAt,
			Status:           in.Contract.Status,
			CurrentPeriodEnd: in.Contract.CurrentPeriodEnd,
		}
	}
	if in.Offer != nil {
		cart.Offer = cartmodels.Offer{
			Hash:      in.Offer.Hash,
			Amount:    in.Offer.Amount,
			Method:    in.Offer.Method,
			Name:      in.Offer.Name,
			CreatedAt: in.Offer.CreatedAt,
		}
	}
	if in.Seller != nil {
		cart.Seller = cartmodels.Seller{
			ID:        in.Seller.ID,
			Name:      in.Seller.Name,
			Email:     in.Seller.Email,
			Cellphone: in.Seller.Cellphone,
		}
	}
	if cart.ProductMetadata == nil {
		cart.ProductMetadata = []map[string]interface{}{}
	}
	if cart.ProposalMetadata == nil {
		cart.ProposalMetadata = []map[string]interface{}{}
	}

	return cart
}
