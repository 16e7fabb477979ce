package webhooksvc

import (
	"context"
	"errors"

	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	cartsvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/service"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/logger"
)

// IngestResult là kết quả của một lần ingest webhook
type IngestResult struct {
	Ignored   bool                     // Sự kiện không phải checkout bị bỏ rơi, đã bỏ qua
	Duplicate bool                     // sale.id đã tồn tại, trả về bản ghi cũ
	Cart      cartmodels.AbandonedCart // Bản ghi đã lưu (mới hoặc cũ)
}

// cartStore là phần storage mà pipeline ingestion cần:
// tra cứu theo sale.id và insert một bản ghi mới.
type cartStore interface {
	FindBySaleID(ctx context.Context, saleID int64) (cartmodels.AbandonedCart, error)
	InsertOne(ctx context.Context, cart cartmodels.AbandonedCart) (cartmodels.AbandonedCart, error)
}

// IngestService điều phối pipeline ingestion:
// classify -> dedup -> persist, với unique index trên sale.id làm chốt chặn cuối.
type IngestService struct {
	cartService *cartsvc.AbandonedCartService
	store       cartStore
}

// NewIngestService tạo mới IngestService
func NewIngestService() (*IngestService, error) {
	cartService, err := cartsvc.NewAbandonedCartService()
	if err != nil {
		return nil, err
	}

	return &IngestService{
		cartService: cartService,
		store:       cartService,
	}, nil
}

// CartService trả về AbandonedCartService bên dưới (dùng cho status adapter của webhook)
func (s *IngestService) CartService() *cartsvc.AbandonedCartService {
	return s.cartService
}

// Ingest xử lý một sự kiện đã chuẩn hóa.
//
// Sự kiện không phải checkout bị bỏ rơi trả về Ignored, không persist.
// Sự kiện trùng sale.id trả về Duplicate kèm bản ghi cũ, cũng là thành công
// vì webhook sender có thể retry mù.
//
// Dedup hai lớp: lookup trước insert, và nếu hai webhook cùng sale.id về đồng
// thời cùng qua được lookup thì unique index trên sale.id chặn insert thứ hai.
// Lỗi duplicate key khi đó được xử lý như tín hiệu "đã tồn tại" và đọc lại
// bản ghi đã thắng.
func (s *IngestService) Ingest(ctx context.Context, cart cartmodels.AbandonedCart) (*IngestResult, error) {
	if !IsAbandonedCheckout(cart.EventName) {
		logger.GetAppLogger().WithField("event_name", cart.EventName).Debug("Sự kiện không phải checkout bị bỏ rơi, bỏ qua")
		return &IngestResult{Ignored: true}, nil
	}

	// Dedup: tra cứu theo sale.id trước khi insert
	existing, err := s.store.FindBySaleID(ctx, cart.Sale.ID)
	if err == nil {
		return &IngestResult{Duplicate: true, Cart: existing}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := s.store.InsertOne(ctx, cart)
	if err != nil {
		// Thua race với một webhook cùng sale.id: unique index đã chặn insert này.
		// Bản ghi thắng là nguồn chân lý, đọc lại và trả về như duplicate.
		if errors.Is(err, common.ErrMongoDuplicate) {
			winner, findErr := s.store.FindBySaleID(ctx, cart.Sale.ID)
			if findErr != nil {
				return nil, findErr
			}
			return &IngestResult{Duplicate: true, Cart: winner}, nil
		}
		return nil, err
	}

	return &IngestResult{Cart: created}, nil
}
