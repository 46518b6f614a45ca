package storefront

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/shopmart/internal/config"
	"github.com/your-org/shopmart/internal/domain/cart"
	"github.com/your-org/shopmart/internal/domain/catalog"
	"github.com/your-org/shopmart/internal/domain/checkout"
	"github.com/your-org/shopmart/internal/domain/order"
	"github.com/your-org/shopmart/internal/domain/view"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Mascara", Price: decimal.RequireFromString("10"), Category: "beauty", Rating: 4.5},
		{ID: 2, Title: "Palette", Price: decimal.RequireFromString("5"), Category: "beauty", Rating: 3.1, DiscountPercentage: 50},
		{ID: 3, Title: "Sofa", Price: decimal.RequireFromString("499.99"), Category: "furniture", Rating: 4.9},
	}
}

func newTestSession(t *testing.T, seed bool) (*Session, *fakeClock, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	store := catalog.NewStore(logger)
	store.Replace(testProducts())

	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := NewSession("session-1", Dependencies{
		Catalog: store,
		IDs:     order.NewSequenceGenerator(),
		Logger:  logger,
		Config: config.CheckoutConfig{
			PageSize:        2,
			ConfirmationTTL: 5 * time.Second,
			SeedOrders:      seed,
		},
		Clock: clock.Now,
	})
	return s, clock, hook
}

func placeOrder(t *testing.T, s *Session) (*order.Order, *checkout.Confirmation) {
	t.Helper()
	_, err := s.BeginCheckout()
	require.NoError(t, err)
	_, err = s.NextStep()
	require.NoError(t, err)
	_, err = s.NextStep()
	require.NoError(t, err)
	placed, banner, err := s.ConfirmCheckout()
	require.NoError(t, err)
	return placed, banner
}

func TestSession_ProductsPaginate(t *testing.T) {
	s, _, _ := newTestSession(t, false)

	page := s.Products()
	assert.False(t, page.Loading)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.HasMore)

	s.LoadMore()
	page = s.Products()
	assert.Len(t, page.Items, 3)
	assert.False(t, page.HasMore)

	category := "furniture"
	state := s.UpdateView(view.Filters{Category: &category})
	assert.Equal(t, 2, state.VisibleCount, "changing the category resets the window")
	page = s.Products()
	require.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Items[0].ID)
}

func TestSession_ProductsWhileCatalogLoading(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewSession("loading", Dependencies{
		Catalog: catalog.NewStore(logger),
		Logger:  logger,
		Config:  config.CheckoutConfig{PageSize: 12, ConfirmationTTL: time.Second, SeedOrders: true},
	})

	page := s.Products()
	assert.True(t, page.Loading)
	assert.Empty(t, page.Items)
	assert.Empty(t, s.Orders(), "fixtures wait for the catalog")
}

func TestSession_SelectProduct(t *testing.T) {
	s, _, _ := newTestSession(t, false)

	detail, err := s.SelectProduct(2)
	require.NoError(t, err)
	assert.True(t, detail.OnSale)
	assert.Equal(t, "10", detail.OriginalPrice.String())
	require.NotNil(t, s.View().SelectedProductID)
	assert.Equal(t, 2, *s.View().SelectedProductID)

	s.ClearSelectedProduct()
	assert.Nil(t, s.View().SelectedProductID)

	_, err = s.SelectProduct(99)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestSession_CartOperations(t *testing.T) {
	s, _, _ := newTestSession(t, false)

	_, err := s.AddToCart(1, 2)
	require.NoError(t, err)
	resp, err := s.AddToCart(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "25", resp.Totals.TotalPrice.String())
	assert.Equal(t, 3, s.CartCount())

	resp, ok := s.ChangeQuantity(1, -100)
	assert.True(t, ok)
	assert.Equal(t, 1, resp.Items[0].Quantity)

	_, ok = s.ChangeQuantity(42, 1)
	assert.False(t, ok)

	resp = s.RemoveFromCart(2)
	assert.Len(t, resp.Items, 1)
	resp = s.RemoveFromCart(2)
	assert.Len(t, resp.Items, 1, "removing an absent line is a no-op")

	_, err = s.AddToCart(99, 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	s.ClearCart()
	assert.Empty(t, s.Cart().Items)
	assert.True(t, s.Cart().Totals.TotalPrice.IsZero())
}

func TestSession_Wishlist(t *testing.T) {
	s, _, _ := newTestSession(t, false)

	on, err := s.ToggleWishlist(3)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Len(t, s.Wishlist(), 1)

	on, err = s.ToggleWishlist(3)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, s.Wishlist())
}

func TestSession_CheckoutCommit(t *testing.T) {
	s, clock, hook := newTestSession(t, false)
	_, err := s.AddToCart(1, 2)
	require.NoError(t, err)
	_, err = s.AddToCart(2, 1)
	require.NoError(t, err)

	state, err := s.BeginCheckout()
	require.NoError(t, err)
	assert.Equal(t, "27.5", state.Summary.TotalAmount.String())

	name := "Sam Lee"
	state, err = s.UpdateShipping(checkout.ShippingForm{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", state.Customer.Name)

	cvv := "999"
	_, err = s.UpdatePayment(checkout.PaymentForm{CVV: &cvv})
	assert.ErrorIs(t, err, checkout.ErrInvalidStep, "payment fields belong to the payment step")

	_, err = s.NextStep()
	require.NoError(t, err)
	_, err = s.UpdatePayment(checkout.PaymentForm{CVV: &cvv})
	require.NoError(t, err)
	_, err = s.NextStep()
	require.NoError(t, err)

	placed, banner, err := s.ConfirmCheckout()
	require.NoError(t, err)
	assert.Equal(t, "27.50", placed.Total().StringFixed(2))
	assert.Equal(t, "Sam Lee", placed.Customer.Name)
	assert.Equal(t, "999", placed.Customer.CVV)
	assert.Equal(t, placed.TrackingID, banner.TrackingID)

	assert.Empty(t, s.Cart().Items)
	assert.False(t, s.Checkout().Active)
	require.Len(t, s.Orders(), 1)
	assert.Equal(t, "Sam Lee", s.Customer().Name, "the form persists as the next pre-fill")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Order placed", entry.Message)
	assert.Equal(t, placed.ID, entry.Data["order_id"])

	_, ok := s.Confirmation()
	assert.True(t, ok)
	clock.Advance(5 * time.Second)
	_, ok = s.Confirmation()
	assert.False(t, ok, "the banner expires")
}

func TestSession_NavigateDismissesConfirmation(t *testing.T) {
	s, _, _ := newTestSession(t, false)
	_, err := s.AddToCart(3, 1)
	require.NoError(t, err)
	placeOrder(t, s)

	s.Navigate(view.ScreenProducts)
	_, ok := s.Confirmation()
	assert.True(t, ok, "staying on the same screen keeps the banner")

	s.Navigate(view.ScreenHistory)
	_, ok = s.Confirmation()
	assert.False(t, ok)
}

func TestSession_TrackDismissesConfirmation(t *testing.T) {
	s, _, _ := newTestSession(t, false)
	_, err := s.AddToCart(3, 1)
	require.NoError(t, err)
	placed, _ := placeOrder(t, s)

	_, ok := s.Track("TRK-UNKNOWN")
	require.False(t, ok)
	_, ok = s.Confirmation()
	assert.True(t, ok, "a missed lookup keeps the current screen")

	_, ok = s.Track(placed.TrackingID)
	require.True(t, ok)
	assert.Equal(t, view.ScreenTracking, s.View().Screen)
	_, ok = s.Confirmation()
	assert.False(t, ok)
}

func TestSession_HugeQuantitiesStayBounded(t *testing.T) {
	s, _, _ := newTestSession(t, false)
	_, err := s.AddToCart(1, math.MaxInt)
	require.NoError(t, err)
	resp, err := s.AddToCart(1, 2)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, cart.MaxQuantity, resp.Items[0].Quantity)

	placed, _ := placeOrder(t, s)
	assert.Equal(t, cart.MaxQuantity, placed.Items[0].Quantity)
	assert.Equal(t, "10989.00", placed.Total().StringFixed(2))
}

func TestSession_CheckoutRequiresItems(t *testing.T) {
	s, _, _ := newTestSession(t, false)

	_, err := s.BeginCheckout()
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)

	_, _, err = s.ConfirmCheckout()
	assert.ErrorIs(t, err, checkout.ErrWizardInactive)
	assert.Empty(t, s.Orders())
}

func TestSession_SeededHistoryAndTracking(t *testing.T) {
	s, _, _ := newTestSession(t, true)

	orders := s.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, order.OrderStatusDelivered, orders[0].Status)
	assert.Equal(t, order.OrderStatusProcessing, orders[2].Status)

	_, err := s.AddToCart(1, 1)
	require.NoError(t, err)
	placed, _ := placeOrder(t, s)

	recent := s.RecentOrders()
	require.Len(t, recent, RecentOrderCount)
	assert.Equal(t, placed.ID, recent[0].ID)

	info, ok := s.Track(placed.TrackingID)
	require.True(t, ok)
	assert.Equal(t, placed.ID, info.Order.ID)
	assert.Equal(t, view.ScreenTracking, s.View().Screen)
	assert.Equal(t, placed.ID, s.View().SelectedOrderID)

	_, ok = s.Track("TRK-UNKNOWN")
	assert.False(t, ok)

	_, err = s.Order("ORD-404")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestSession_ConcurrentAdds(t *testing.T) {
	s, _, _ := newTestSession(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddToCart(1, 1)
		}()
	}
	wg.Wait()

	cart := s.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 50, cart.Items[0].Quantity)
}

func TestRegistry_ResolveAndSweep(t *testing.T) {
	logger, _ := test.NewNullLogger()
	store := catalog.NewStore(logger)
	store.Replace(testProducts())
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	r := NewRegistry(Dependencies{
		Catalog: store,
		Logger:  logger,
		Config:  config.CheckoutConfig{PageSize: 12, ConfirmationTTL: time.Second},
		Clock:   clock.Now,
	}, time.Hour)

	s, created := r.Resolve("")
	assert.True(t, created)
	again, created := r.Resolve(s.ID())
	assert.False(t, created)
	assert.Same(t, s, again)

	_, created = r.Resolve("unknown-id")
	assert.True(t, created)
	assert.Equal(t, 2, r.Len())

	clock.Advance(30 * time.Minute)
	s.CartCount()
	clock.Advance(45 * time.Minute)

	assert.Equal(t, 1, r.Sweep())
	_, ok := r.Get(s.ID())
	assert.True(t, ok, "recently used sessions survive")
}

func TestRegistry_RunStopsOnCancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	r := NewRegistry(Dependencies{Catalog: catalog.NewStore(logger), Logger: logger}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
