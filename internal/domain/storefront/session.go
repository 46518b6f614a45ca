// internal/domain/storefront/session.go
package storefront

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/shopmart/internal/config"
	"github.com/your-org/shopmart/internal/domain/cart"
	"github.com/your-org/shopmart/internal/domain/catalog"
	"github.com/your-org/shopmart/internal/domain/checkout"
	"github.com/your-org/shopmart/internal/domain/order"
	"github.com/your-org/shopmart/internal/domain/view"
	"github.com/your-org/shopmart/internal/domain/wishlist"
)

// RecentOrderCount is how many orders the tracking screen lists
const RecentOrderCount = 3

// Dependencies are shared by every session of a registry
type Dependencies struct {
	Catalog *catalog.Store
	IDs     order.IDGenerator
	Logger  *logrus.Logger
	Config  config.CheckoutConfig
	Clock   func() time.Time
}

// Session is the state container of one visitor. Every mutation goes through
// a named operation and all operations are serialized by mu.
type Session struct {
	mu sync.Mutex

	id       string
	deps     Dependencies
	cart     *cart.Cart
	wishlist *wishlist.Wishlist
	history  *order.History
	view     *view.State
	wizard   *checkout.Wizard
	customer order.CustomerInfo
	banner   *checkout.Confirmation
	seeded   bool
	lastSeen time.Time
}

// NewSession creates a session with an empty cart and the demo customer
func NewSession(id string, deps Dependencies) *Session {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	if deps.IDs == nil {
		deps.IDs = order.NewSequenceGenerator()
	}

	return &Session{
		id:       id,
		deps:     deps,
		cart:     cart.New(),
		wishlist: wishlist.New(),
		history:  order.NewHistory(),
		view:     view.NewState(deps.Config.PageSize),
		wizard:   checkout.NewWizard(),
		customer: order.DefaultCustomerInfo(),
		lastSeen: deps.Clock(),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// LastSeen returns when the session last served an operation
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// touch must be called with mu held
func (s *Session) touch() {
	s.lastSeen = s.deps.Clock()
	s.ensureSeeded()
}

// ensureSeeded fills the history with fixture orders once the catalog has
// finished loading
func (s *Session) ensureSeeded() {
	if s.seeded || !s.deps.Config.SeedOrders || s.deps.Catalog.Loading() {
		return
	}
	s.seeded = true
	n := order.SeedFixtures(s.history, s.deps.Catalog.Products(), s.deps.IDs, s.customer, s.deps.Clock())
	if n > 0 {
		s.deps.Logger.WithFields(logrus.Fields{
			"session_id": s.id,
			"orders":     n,
		}).Debug("Seeded order history")
	}
}

// Products derives the visible product page from the catalog and the view
func (s *Session) Products() ProductPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	return ProductPage{
		Page:    view.Derive(s.deps.Catalog.Products(), *s.view),
		Loading: s.deps.Catalog.Loading(),
		View:    s.view.Clone(),
	}
}

// Categories returns the catalog's categories in first-seen order
func (s *Session) Categories() []string {
	return s.deps.Catalog.Categories()
}

// SelectProduct opens the detail view of a product
func (s *Session) SelectProduct(id int) (catalog.ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	p, err := s.deps.Catalog.Get(id)
	if err != nil {
		return catalog.ProductView{}, err
	}
	s.view.SelectProduct(id)
	return catalog.NewProductView(p), nil
}

// ClearSelectedProduct closes the detail view
func (s *Session) ClearSelectedProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.view.ClearSelectedProduct()
}

// View returns a snapshot of the view state
func (s *Session) View() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.view.Clone()
}

// UpdateView applies list control changes
func (s *Session) UpdateView(f view.Filters) view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.view.Apply(f)
	return s.view.Clone()
}

// LoadMore reveals one more page of products
func (s *Session) LoadMore() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.view.LoadMore()
	return s.view.Clone()
}

// Navigate switches screens. Leaving the current screen dismisses the
// confirmation banner.
func (s *Session) Navigate(screen view.Screen) view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.switchScreen(screen)
	s.view.Navigate(screen)
	return s.view.Clone()
}

// switchScreen dismisses the confirmation banner when screen differs from
// the current one. Callers hold s.mu.
func (s *Session) switchScreen(screen view.Screen) {
	if screen != s.view.Screen {
		s.banner = nil
	}
}

// Cart returns the cart lines and totals
func (s *Session) Cart() CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.cartResponse()
}

func (s *Session) cartResponse() CartResponse {
	return CartResponse{
		Items:  s.cart.Lines(),
		Totals: s.cart.Totals(),
	}
}

// CartCount returns the number of units in the cart
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.cart.TotalItems()
}

// AddToCart adds quantity units of a catalog product
func (s *Session) AddToCart(productID, quantity int) (CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	p, err := s.deps.Catalog.Get(productID)
	if err != nil {
		return CartResponse{}, err
	}
	s.cart.Add(p, quantity)
	return s.cartResponse(), nil
}

// ChangeQuantity adjusts a line by delta, never below one unit
func (s *Session) ChangeQuantity(productID, delta int) (CartResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	_, ok := s.cart.ChangeQuantity(productID, delta)
	return s.cartResponse(), ok
}

// RemoveFromCart deletes a line; absent lines are ignored
func (s *Session) RemoveFromCart(productID int) CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.cart.Remove(productID)
	return s.cartResponse()
}

// ClearCart empties the cart
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.cart.Clear()
}

// Wishlist returns the wishlisted products in insertion order
func (s *Session) Wishlist() []wishlist.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.wishlist.Entries()
}

// ToggleWishlist flips membership of a catalog product and reports whether
// it is now wishlisted
func (s *Session) ToggleWishlist(productID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	p, err := s.deps.Catalog.Get(productID)
	if err != nil {
		return false, err
	}
	return s.wishlist.Toggle(p), nil
}

// Customer returns the checkout pre-fill
func (s *Session) Customer() order.CustomerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.customer
}

// Checkout returns the wizard state and the current order summary
func (s *Session) Checkout() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.checkoutState()
}

func (s *Session) checkoutState() CheckoutState {
	return CheckoutState{
		Active:   s.wizard.Active(),
		Step:     s.wizard.Step(),
		Customer: s.customer,
		Items:    s.cart.Lines(),
		Summary:  order.PriceSubtotal(s.cart.TotalPrice()),
	}
}

// BeginCheckout enters the wizard at the shipping step
func (s *Session) BeginCheckout() (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.wizard.Begin(s.cart); err != nil {
		return s.checkoutState(), err
	}
	return s.checkoutState(), nil
}

// UpdateShipping edits shipping fields while on the shipping step
func (s *Session) UpdateShipping(form checkout.ShippingForm) (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.wizard.Require(checkout.StepShippingInfo); err != nil {
		return s.checkoutState(), err
	}
	checkout.ApplyShipping(&s.customer, form)
	return s.checkoutState(), nil
}

// UpdatePayment edits payment fields while on the payment step
func (s *Session) UpdatePayment(form checkout.PaymentForm) (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.wizard.Require(checkout.StepPaymentInfo); err != nil {
		return s.checkoutState(), err
	}
	checkout.ApplyPayment(&s.customer, form)
	return s.checkoutState(), nil
}

// NextStep advances the wizard
func (s *Session) NextStep() (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	_, err := s.wizard.Next()
	return s.checkoutState(), err
}

// PreviousStep moves the wizard back
func (s *Session) PreviousStep() (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	_, err := s.wizard.Back()
	return s.checkoutState(), err
}

// CancelCheckout leaves the wizard without placing an order
func (s *Session) CancelCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.wizard.Cancel()
}

// ConfirmCheckout places the order from the review step
func (s *Session) ConfirmCheckout() (*order.Order, *checkout.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	placed, banner, err := s.wizard.Confirm(s.cart, s.history, s.customer, s.deps.IDs, s.deps.Clock(), s.deps.Config.ConfirmationTTL)
	if err != nil {
		return nil, nil, err
	}
	s.banner = banner

	s.deps.Logger.WithFields(logrus.Fields{
		"session_id":  s.id,
		"order_id":    placed.ID,
		"tracking_id": placed.TrackingID,
		"total":       placed.Total().StringFixed(2),
	}).Info("Order placed")

	return placed, banner, nil
}

// Confirmation returns the banner of the last order while it is visible
func (s *Session) Confirmation() (*checkout.Confirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.banner.Visible(s.deps.Clock()) {
		s.banner = nil
		return nil, false
	}
	banner := *s.banner
	return &banner, true
}

// Orders returns the history, newest first
func (s *Session) Orders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.history.List()
}

// Order returns one order of the history
func (s *Session) Order(id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.history.Get(id)
}

// RecentOrders returns the newest orders for the tracking screen
func (s *Session) RecentOrders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.history.Recent(RecentOrderCount)
}

// Track looks an order up by tracking id and, when found, opens it on the
// tracking screen. A miss is not an error.
func (s *Session) Track(trackingID string) (order.TrackingInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	o, ok := s.history.FindByTracking(trackingID)
	if !ok {
		return order.TrackingInfo{}, false
	}
	s.switchScreen(view.ScreenTracking)
	s.view.SelectOrder(o.ID)
	return order.Track(o, s.deps.Clock()), true
}
