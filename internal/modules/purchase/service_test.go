package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklane/stocklane-backend/internal/composite"
)

type fakeRepo struct {
	headers  map[uuid.UUID]*Purchase
	items    map[uuid.UUID][]*Item
	idemKeys map[string]bool

	insertHeaderErr error
	insertItemsErr  error
	deleteErr       error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		headers:  map[uuid.UUID]*Purchase{},
		items:    map[uuid.UUID][]*Item{},
		idemKeys: map[string]bool{},
	}
}

func (f *fakeRepo) InsertPurchase(ctx context.Context, p *Purchase) error {
	if f.insertHeaderErr != nil {
		return f.insertHeaderErr
	}
	if p.IdempotencyKey != "" {
		if f.idemKeys[p.IdempotencyKey] {
			return ErrDuplicateSubmission
		}
		f.idemKeys[p.IdempotencyKey] = true
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	stored := *p
	f.headers[p.ID] = &stored
	return nil
}

func (f *fakeRepo) InsertItems(ctx context.Context, purchaseID uuid.UUID, items []*Item) error {
	if f.insertItemsErr != nil {
		return f.insertItemsErr
	}
	for _, item := range items {
		item.ID = uuid.New()
		f.items[purchaseID] = append(f.items[purchaseID], item)
	}
	return nil
}

func (f *fakeRepo) DeletePurchase(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.headers, uuid.MustParse(id))
	return nil
}

func (f *fakeRepo) DeleteItems(ctx context.Context, purchaseID string) error {
	delete(f.items, uuid.MustParse(purchaseID))
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Purchase, error) {
	p, ok := f.headers[uuid.MustParse(id)]
	if !ok {
		return nil, errors.New("purchase not found")
	}
	p.Items = f.items[p.ID]
	return p, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Purchase, error) {
	var out []*Purchase
	for _, p := range f.headers {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = status
	return nil
}

func (f *fakeRepo) UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.PaymentStatus = status
	return nil
}

func (f *fakeRepo) DeleteOrphanedHeaders(ctx context.Context, olderThan time.Time) (int64, error) {
	var removed int64
	for id, p := range f.headers {
		if len(f.items[id]) == 0 && p.CreatedAt.Before(olderThan) {
			delete(f.headers, id)
			removed++
		}
	}
	return removed, nil
}

func validRequest() CreatePurchaseRequest {
	return CreatePurchaseRequest{
		SupplierID:      uuid.NewString(),
		ReferenceNumber: "PO-1",
		Items: []CartItem{
			{ProductID: uuid.NewString(), Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
			{ProductID: uuid.NewString(), Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
	}
}

func TestCreatePurchase(t *testing.T) {
	t.Run("persists header and items consistently", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		p, err := svc.CreatePurchase(context.Background(), validRequest())
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, p.ID)

		assert.True(t, p.TotalAmount.Equal(decimal.NewFromInt(30)),
			"header total equals the sum of item totals, got %s", p.TotalAmount)

		items := repo.items[p.ID]
		require.Len(t, items, 2)
		for _, item := range items {
			assert.Equal(t, p.ID, item.PurchaseID, "item carries the generated header id")
			expected := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			assert.True(t, item.TotalPrice.Equal(expected))
		}
	})

	t.Run("item insert failure removes the header", func(t *testing.T) {
		repo := newFakeRepo()
		repo.insertItemsErr = errors.New("constraint violation on second item")
		svc := NewService(repo)

		_, err := svc.CreatePurchase(context.Background(), validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, repo.insertItemsErr, "caller sees the item-insert error, not the delete outcome")
		assert.Empty(t, repo.headers, "compensating delete removed the header")
	})

	t.Run("failed compensation leaves an observable orphan", func(t *testing.T) {
		repo := newFakeRepo()
		repo.insertItemsErr = errors.New("item insert rejected")
		repo.deleteErr = errors.New("delete timed out")
		svc := NewService(repo)

		_, err := svc.CreatePurchase(context.Background(), validRequest())

		var compErr *composite.CompensationError
		require.ErrorAs(t, err, &compErr)
		assert.ErrorIs(t, err, repo.insertItemsErr)
		require.Len(t, repo.headers, 1, "orphaned header remains")
		for id := range repo.headers {
			assert.Empty(t, repo.items[id])
		}
	})

	t.Run("header insert failure has no side effects", func(t *testing.T) {
		repo := newFakeRepo()
		repo.insertHeaderErr = errors.New("supplier does not exist")
		svc := NewService(repo)

		_, err := svc.CreatePurchase(context.Background(), validRequest())

		assert.ErrorIs(t, err, repo.insertHeaderErr)
		assert.Empty(t, repo.headers)
		assert.Empty(t, repo.items)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		req := validRequest()
		req.Items = nil

		_, err := svc.CreatePurchase(context.Background(), req)
		assert.ErrorContains(t, err, "at least one item")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		req := validRequest()
		req.Items[0].Quantity = 0

		_, err := svc.CreatePurchase(context.Background(), req)
		assert.ErrorContains(t, err, "quantity must be > 0")
	})

	t.Run("duplicate idempotency key is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		req := validRequest()
		req.IdempotencyKey = "idem-1"

		_, err := svc.CreatePurchase(context.Background(), req)
		require.NoError(t, err)

		_, err = svc.CreatePurchase(context.Background(), req)
		assert.ErrorIs(t, err, ErrDuplicateSubmission)
		assert.Len(t, repo.headers, 1, "no second aggregate was created")
	})
}

func TestDeletePurchaseRemovesItemsFirst(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	p, err := svc.CreatePurchase(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePurchase(context.Background(), p.ID.String()))
	assert.Empty(t, repo.headers)
	assert.Empty(t, repo.items)
}

func TestUpdateStatusValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	p, err := svc.CreatePurchase(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Error(t, svc.UpdateStatus(context.Background(), p.ID.String(), UpdateStatusRequest{Status: "shipped"}))
	require.NoError(t, svc.UpdateStatus(context.Background(), p.ID.String(), UpdateStatusRequest{Status: "received"}))
	assert.Equal(t, StatusReceived, repo.headers[p.ID].Status)

	assert.Error(t, svc.UpdatePaymentStatus(context.Background(), p.ID.String(), UpdatePaymentStatusRequest{PaymentStatus: "iou"}))
	require.NoError(t, svc.UpdatePaymentStatus(context.Background(), p.ID.String(), UpdatePaymentStatusRequest{PaymentStatus: "paid"}))
	assert.Equal(t, PaymentPaid, repo.headers[p.ID].PaymentStatus)
}
