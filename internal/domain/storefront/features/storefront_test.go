package features

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/your-org/shopmart/internal/config"
	"github.com/your-org/shopmart/internal/domain/cart"
	"github.com/your-org/shopmart/internal/domain/catalog"
	"github.com/your-org/shopmart/internal/domain/order"
	"github.com/your-org/shopmart/internal/domain/storefront"
	"github.com/your-org/shopmart/internal/domain/view"
)

type storefrontTestContext struct {
	store        *catalog.Store
	session      *storefront.Session
	cartBefore   []cart.Line
	tracked      order.TrackingInfo
	trackedFound bool
	err          error
}

func (c *storefrontTestContext) reset() {
	logger, _ := test.NewNullLogger()
	c.store = catalog.NewStore(logger)
	c.session = nil
	c.cartBefore = nil
	c.tracked = order.TrackingInfo{}
	c.trackedFound = false
	c.err = nil
}

func (c *storefrontTestContext) theCatalogContains(table *godog.Table) error {
	var products []catalog.Product
	for _, row := range table.Rows[1:] {
		id, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(row.Cells[2].Value)
		if err != nil {
			return err
		}
		rating, err := strconv.ParseFloat(row.Cells[4].Value, 64)
		if err != nil {
			return err
		}
		products = append(products, catalog.Product{
			ID:       id,
			Title:    row.Cells[1].Value,
			Price:    price,
			Category: row.Cells[3].Value,
			Rating:   rating,
		})
	}
	c.store.Replace(products)
	return nil
}

func (c *storefrontTestContext) aNewSessionWithoutFixtureOrders() error {
	logger, _ := test.NewNullLogger()
	c.session = storefront.NewSession("feature", storefront.Dependencies{
		Catalog: c.store,
		IDs:     order.NewSequenceGenerator(),
		Logger:  logger,
		Config: config.CheckoutConfig{
			PageSize:        12,
			ConfirmationTTL: 5 * time.Second,
		},
	})
	return nil
}

func (c *storefrontTestContext) iAddOfProductToTheCart(quantity, productID int) error {
	_, err := c.session.AddToCart(productID, quantity)
	return err
}

func (c *storefrontTestContext) iChangeTheQuantityOfProductBy(productID, delta int) error {
	if _, ok := c.session.ChangeQuantity(productID, delta); !ok {
		return fmt.Errorf("product %d is not in the cart", productID)
	}
	return nil
}

func (c *storefrontTestContext) iToggleProductInTheWishlist(productID int) error {
	_, err := c.session.ToggleWishlist(productID)
	return err
}

func (c *storefrontTestContext) iFilterByCategory(category string) error {
	c.session.UpdateView(view.Filters{Category: &category})
	return nil
}

func (c *storefrontTestContext) iSortBy(key string) error {
	sortKey, err := view.ParseSortKey(key)
	if err != nil {
		return err
	}
	c.session.UpdateView(view.Filters{Sort: &sortKey})
	return nil
}

func (c *storefrontTestContext) iBeginCheckout() error {
	_, err := c.session.BeginCheckout()
	return err
}

func (c *storefrontTestContext) iGoBack() error {
	_, c.err = c.session.PreviousStep()
	return nil
}

func (c *storefrontTestContext) iCheckOutThroughToReview() error {
	c.cartBefore = c.session.Cart().Items
	if _, err := c.session.BeginCheckout(); err != nil {
		return err
	}
	if _, err := c.session.NextStep(); err != nil {
		return err
	}
	_, err := c.session.NextStep()
	return err
}

func (c *storefrontTestContext) iConfirmTheOrder() error {
	_, _, err := c.session.ConfirmCheckout()
	return err
}

func (c *storefrontTestContext) iTrack(trackingID string) error {
	c.tracked, c.trackedFound = c.session.Track(trackingID)
	return nil
}

func (c *storefrontTestContext) iTrackTheNewestOrder() error {
	orders := c.session.Orders()
	if len(orders) == 0 {
		return errors.New("no orders placed")
	}
	return c.iTrack(strings.ToLower(orders[0].TrackingID))
}

func (c *storefrontTestContext) theCartTotalIs(expected string) error {
	got := c.session.Cart().Totals.TotalPrice.StringFixed(2)
	if got != expected {
		return fmt.Errorf("expected cart total %s, got %s", expected, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartHoldsItems(expected int) error {
	if got := c.session.CartCount(); got != expected {
		return fmt.Errorf("expected %d items, got %d", expected, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartHasLine(expected int) error {
	if got := len(c.session.Cart().Items); got != expected {
		return fmt.Errorf("expected %d lines, got %d", expected, got)
	}
	return nil
}

func (c *storefrontTestContext) productHasQuantity(productID, expected int) error {
	for _, line := range c.session.Cart().Items {
		if line.ProductID == productID {
			if line.Quantity != expected {
				return fmt.Errorf("expected quantity %d, got %d", expected, line.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("product %d is not in the cart", productID)
}

func (c *storefrontTestContext) theCartIsEmpty() error {
	if n := len(c.session.Cart().Items); n != 0 {
		return fmt.Errorf("expected an empty cart, got %d lines", n)
	}
	return nil
}

func (c *storefrontTestContext) theHistoryHoldsOrder(expected int) error {
	if got := len(c.session.Orders()); got != expected {
		return fmt.Errorf("expected %d orders, got %d", expected, got)
	}
	return nil
}

func (c *storefrontTestContext) theNewestOrderTotalIs(expected string) error {
	orders := c.session.Orders()
	if len(orders) == 0 {
		return errors.New("no orders placed")
	}
	if got := orders[0].Total().StringFixed(2); got != expected {
		return fmt.Errorf("expected order total %s, got %s", expected, got)
	}
	return nil
}

func (c *storefrontTestContext) theNewestOrderHasLinesMatchingTheCartBeforeCheckout(expected int) error {
	orders := c.session.Orders()
	if len(orders) == 0 {
		return errors.New("no orders placed")
	}
	items := orders[0].Items
	if len(items) != expected || len(c.cartBefore) != expected {
		return fmt.Errorf("expected %d lines, order has %d and cart had %d", expected, len(items), len(c.cartBefore))
	}
	for i, item := range items {
		before := c.cartBefore[i]
		if item.ProductID != before.ProductID || item.Quantity != before.Quantity || !item.Product.Price.Equal(before.Product.Price) {
			return fmt.Errorf("line %d differs: order %+v, cart %+v", i, item, before)
		}
	}
	return nil
}

func (c *storefrontTestContext) theWishlistIsEmpty() error {
	if n := len(c.session.Wishlist()); n != 0 {
		return fmt.Errorf("expected an empty wishlist, got %d entries", n)
	}
	return nil
}

func (c *storefrontTestContext) theVisibleProductsAre(expected string) error {
	var ids []string
	for _, p := range c.session.Products().Items {
		ids = append(ids, strconv.Itoa(p.ID))
	}
	if got := strings.Join(ids, ","); got != expected {
		return fmt.Errorf("expected products %s, got %s", expected, got)
	}
	return nil
}

func (c *storefrontTestContext) noOrderIsFound() error {
	if c.trackedFound {
		return fmt.Errorf("expected no order, found %s", c.tracked.Order.ID)
	}
	return nil
}

func (c *storefrontTestContext) theOrderIsFoundOnTheTrackingScreen() error {
	if !c.trackedFound {
		return errors.New("expected the order to be found")
	}
	state := c.session.View()
	if state.Screen != view.ScreenTracking || state.SelectedOrderID != c.tracked.Order.ID {
		return fmt.Errorf("expected tracking screen for %s, got %s/%s", c.tracked.Order.ID, state.Screen, state.SelectedOrderID)
	}
	return nil
}

func (c *storefrontTestContext) theCheckoutFailsWith(substring string) error {
	if c.err == nil {
		return errors.New("expected checkout to fail but it succeeded")
	}
	if !strings.Contains(c.err.Error(), substring) {
		return fmt.Errorf("expected error to contain %q, got %q", substring, c.err.Error())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog contains:$`, tc.theCatalogContains)
	ctx.Step(`^a new session without fixture orders$`, tc.aNewSessionWithoutFixtureOrders)

	// When steps
	ctx.Step(`^I add (\d+) of product (\d+) to the cart$`, tc.iAddOfProductToTheCart)
	ctx.Step(`^I change the quantity of product (\d+) by (-?\d+)$`, tc.iChangeTheQuantityOfProductBy)
	ctx.Step(`^I toggle product (\d+) in the wishlist$`, tc.iToggleProductInTheWishlist)
	ctx.Step(`^I filter by category "([^"]*)"$`, tc.iFilterByCategory)
	ctx.Step(`^I sort by "([^"]*)"$`, tc.iSortBy)
	ctx.Step(`^I begin checkout$`, tc.iBeginCheckout)
	ctx.Step(`^I go back$`, tc.iGoBack)
	ctx.Step(`^I check out through to review$`, tc.iCheckOutThroughToReview)
	ctx.Step(`^I confirm the order$`, tc.iConfirmTheOrder)
	ctx.Step(`^I track "([^"]*)"$`, tc.iTrack)
	ctx.Step(`^I track the newest order$`, tc.iTrackTheNewestOrder)

	// Then steps
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the cart holds (\d+) items$`, tc.theCartHoldsItems)
	ctx.Step(`^the cart has (\d+) line$`, tc.theCartHasLine)
	ctx.Step(`^product (\d+) has quantity (\d+)$`, tc.productHasQuantity)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the history holds (\d+) order$`, tc.theHistoryHoldsOrder)
	ctx.Step(`^the newest order total is "([^"]*)"$`, tc.theNewestOrderTotalIs)
	ctx.Step(`^the newest order has (\d+) lines matching the cart before checkout$`, tc.theNewestOrderHasLinesMatchingTheCartBeforeCheckout)
	ctx.Step(`^the wishlist is empty$`, tc.theWishlistIsEmpty)
	ctx.Step(`^the visible products are "([^"]*)"$`, tc.theVisibleProductsAre)
	ctx.Step(`^no order is found$`, tc.noOrderIsFound)
	ctx.Step(`^the order is found on the tracking screen$`, tc.theOrderIsFoundOnTheTrackingScreen)
	ctx.Step(`^the checkout fails with "([^"]*)"$`, tc.theCheckoutFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"storefront.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
