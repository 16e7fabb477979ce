package webhooksvc

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
)

// fakeCartStore mô phỏng tầng storage cho pipeline ingestion.
// raceWinner mô phỏng bản ghi của webhook thắng race: chỉ xuất hiện
// khi tra cứu lại sau một lần insert thất bại.
type fakeCartStore struct {
	existing   map[int64]cartmodels.AbandonedCart
	insertErr  error
	raceWinner *cartmodels.AbandonedCart
	finds      int
	inserts    int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{existing: map[int64]cartmodels.AbandonedCart{}}
}

func (f *fakeCartStore) FindBySaleID(ctx context.Context, saleID int64) (cartmodels.AbandonedCart, error) {
	f.finds++
	if cart, ok := f.existing[saleID]; ok {
		return cart, nil
	}
	if f.raceWinner != nil && f.inserts > 0 {
		return *f.raceWinner, nil
	}
	return cartmodels.AbandonedCart{}, common.ErrNotFound
}

func (f *fakeCartStore) InsertOne(ctx context.Context, cart cartmodels.AbandonedCart) (cartmodels.AbandonedCart, error) {
	f.inserts++
	if f.insertErr != nil {
		return cartmodels.AbandonedCart{}, f.insertErr
	}
	cart.ID = primitive.NewObjectID()
	f.existing[cart.Sale.ID] = cart
	return cart, nil
}

func newTestCart(eventName string, saleID int64) cartmodels.AbandonedCart {
	return cartmodels.AbandonedCart{
		EventName:  eventName,
		Sale:       cartmodels.Sale{ID: saleID, Amount: 297.5},
		Client:     cartmodels.Client{Email: "adrian.barton@greenholt.net"},
		Product:    cartmodels.Product{Name: "Curso de Marketing"},
		CartStatus: cartmodels.CartStatusAbandoned,
	}
}

func TestIngest_IgnoredEvent(t *testing.T) {
	store := newFakeCartStore()
	svc := &IngestService{store: store}

	result, err := svc.Ingest(context.Background(), newTestCart("order.paid", 526))
	if err != nil {
		t.Fatalf("Ingest lỗi: %v", err)
	}
	if !result.Ignored {
		t.Error("Sự kiện không phải checkout bị bỏ rơi phải trả về Ignored")
	}
	if store.finds != 0 || store.inserts != 0 {
		t.Errorf("Sự kiện ignored không được chạm vào storage: finds=%d inserts=%d", store.finds, store.inserts)
	}
}

func TestIngest_NewEvent(t *testing.T) {
	store := newFakeCartStore()
	svc := &IngestService{store: store}

	result, err := svc.Ingest(context.Background(), newTestCart("checkoutAbandoned", 526))
	if err != nil {
		t.Fatalf("Ingest lỗi: %v", err)
	}
	if result.Ignored || result.Duplicate {
		t.Errorf("Sự kiện mới phải được lưu: Ignored=%v Duplicate=%v", result.Ignored, result.Duplicate)
	}
	if result.Cart.ID.IsZero() {
		t.Error("Bản ghi mới phải có ID sau khi insert")
	}
	if store.inserts != 1 {
		t.Errorf("Số lần insert = %d, muốn 1", store.inserts)
	}
}

func TestIngest_DuplicateFoundByLookup(t *testing.T) {
	store := newFakeCartStore()
	seeded := newTestCart("checkoutAbandoned", 526)
	seeded.ID = primitive.NewObjectID()
	store.existing[526] = seeded
	svc := &IngestService{store: store}

	result, err := svc.Ingest(context.Background(), newTestCart("cart_abandoned", 526))
	if err != nil {
		t.Fatalf("Ingest lỗi: %v", err)
	}
	if !result.Duplicate {
		t.Error("Sự kiện trùng sale.id phải trả về Duplicate")
	}
	if result.Cart.ID != seeded.ID {
		t.Errorf("Cart.ID = %s, muốn bản ghi đã tồn tại %s", result.Cart.ID.Hex(), seeded.ID.Hex())
	}
	if store.inserts != 0 {
		t.Errorf("Trùng qua lookup không được insert: inserts=%d", store.inserts)
	}
}

func TestIngest_DuplicateKeyOnInsert(t *testing.T) {
	// Hai webhook cùng sale.id cùng qua được lookup: unique index chặn
	// insert thứ hai, pipeline phải đọc lại bản ghi thắng và trả về duplicate.
	store := newFakeCartStore()
	winner := newTestCart("checkoutAbandoned", 526)
	winner.ID = primitive.NewObjectID()
	store.insertErr = common.ErrMongoDuplicate
	store.raceWinner = &winner
	svc := &IngestService{store: store}

	result, err := svc.Ingest(context.Background(), newTestCart("checkoutAbandoned", 526))
	if err != nil {
		t.Fatalf("Thua race không phải lỗi, Ingest phải thành công: %v", err)
	}
	if !result.Duplicate {
		t.Error("Thua race unique index phải trả về Duplicate")
	}
	if result.Cart.ID != winner.ID {
		t.Errorf("Cart.ID = %s, muốn bản ghi thắng race %s", result.Cart.ID.Hex(), winner.ID.Hex())
	}
	if store.inserts != 1 || store.finds != 2 {
		t.Errorf("Pipeline phải insert 1 lần và tra cứu 2 lần: inserts=%d finds=%d", store.inserts, store.finds)
	}
}
