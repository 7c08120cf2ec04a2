package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/catalog"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/config"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/coupon"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/orders"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/service"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/shipping"
	"github.com/rs/zerolog"
)

type app struct {
	cfg       *config.Config
	logger    zerolog.Logger
	catalog   catalog.Store
	coupons   coupon.Store
	orders    orders.Repository
	carts     *service.CartService
	checkout  *service.CheckoutService
	estimator *shipping.Estimator
	cart      *domain.Cart

	in  *bufio.Scanner
	out io.Writer
}

func newApp(
	cfg *config.Config,
	logger zerolog.Logger,
	catalogStore catalog.Store,
	couponStore coupon.Store,
	orderRepo orders.Repository,
	carts *service.CartService,
	checkout *service.CheckoutService,
	estimator *shipping.Estimator,
	userID string,
) *app {
	return &app{
		cfg:       cfg,
		logger:    logger,
		catalog:   catalogStore,
		coupons:   couponStore,
		orders:    orderRepo,
		carts:     carts,
		checkout:  checkout,
		estimator: estimator,
		cart:      carts.CartForUser(userID),
	}
}

func (a *app) run(in io.Reader, out io.Writer) {
	a.in = bufio.NewScanner(in)
	a.out = out

	for {
		a.printMenu()
		choice := a.prompt("Choose an option: ")
		switch choice {
		case "1":
			a.listProducts()
		case "2":
			a.showCart()
		case "3":
			a.addProduct()
		case "4":
			a.updateQuantity()
		case "5":
			a.removeItem()
		case "6":
			a.applyCoupon()
		case "7":
			a.removeCoupon()
		case "8":
			a.estimateShipping()
		case "9":
			a.doCheckout()
		case "10":
			a.orderHistory()
		case "11":
			a.clearCart()
		case "12":
			a.listCoupons()
		case "0", "":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown option.")
		}
	}
}

func (a *app) printMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== Cart Simulator ===")
	fmt.Fprintln(a.out, " 1) Browse catalog")
	fmt.Fprintln(a.out, " 2) View cart")
	fmt.Fprintln(a.out, " 3) Add product to cart")
	fmt.Fprintln(a.out, " 4) Update item quantity")
	fmt.Fprintln(a.out, " 5) Remove item")
	fmt.Fprintln(a.out, " 6) Apply coupon")
	fmt.Fprintln(a.out, " 7) Remove coupon")
	fmt.Fprintln(a.out, " 8) Estimate shipping")
	fmt.Fprintln(a.out, " 9) Checkout")
	fmt.Fprintln(a.out, "10) Order history")
	fmt.Fprintln(a.out, "11) Clear cart")
	fmt.Fprintln(a.out, "12) Available coupons")
	fmt.Fprintln(a.out, " 0) Exit")
}

func (a *app) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptInt(label string) (int, bool) {
	raw := a.prompt(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(a.out, "Not a number: %q\n", raw)
		return 0, false
	}
	return n, true
}

func (a *app) money(v float64) string {
	return fmt.Sprintf("%s %.2f", a.cfg.Currency, v)
}

func (a *app) listProducts() {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tFINAL\tSTOCK\tRATING")
	for _, p := range a.catalog.List() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%.1f\n",
			p.ID, p.Name, p.Category, a.money(p.Price), a.money(p.FinalPrice()), p.Stock, p.Rating)
	}
	w.Flush()
}

func (a *app) showCart() {
	if a.cart.IsEmpty() {
		fmt.Fprintln(a.out, "Cart is empty.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tUNIT\tSUBTOTAL")
	for _, item := range a.cart.Items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			item.Product.ID, item.Product.Name, item.Quantity,
			a.money(item.Product.FinalPrice()), a.money(item.Subtotal()))
	}
	w.Flush()
	a.printSummary()
}

func (a *app) printSummary() {
	s := a.cart.Summary()
	fmt.Fprintf(a.out, "\nSubtotal before discounts: %s\n", a.money(s.OriginalSubtotal))
	fmt.Fprintf(a.out, "Product discounts:         -%s\n", a.money(s.ProductDiscounts))
	fmt.Fprintf(a.out, "Subtotal:                  %s\n", a.money(s.Subtotal))
	for _, cp := range a.cart.Coupons {
		fmt.Fprintf(a.out, "Coupon %s:            -%s\n", cp.Code, a.money(cp.Discount(s.Subtotal)))
	}
	fmt.Fprintf(a.out, "Shipping:                  %s\n", a.money(s.ShippingCost))
	fmt.Fprintf(a.out, "Total:                     %s\n", a.money(s.Total))
	if s.TotalSavings > 0 {
		fmt.Fprintf(a.out, "You saved %s on this order.\n", a.money(s.TotalSavings))
	}
}

func (a *app) addProduct() {
	id, ok := a.promptInt("Product id: ")
	if !ok {
		return
	}
	qty, ok := a.promptInt("Quantity: ")
	if !ok {
		return
	}
	if err := a.carts.AddProduct(a.cart.ID, int64(id), qty); err != nil {
		a.logger.Warn().Err(err).Int("product_id", id).Msg("add product rejected")
		fmt.Fprintf(a.out, "Could not add product: %v\n", err)
		return
	}
	a.logger.Info().Int("product_id", id).Int("quantity", qty).Msg("product added to cart")
	fmt.Fprintln(a.out, "Added.")
}

func (a *app) updateQuantity() {
	id, ok := a.promptInt("Product id: ")
	if !ok {
		return
	}
	qty, ok := a.promptInt("New quantity (0 removes): ")
	if !ok {
		return
	}
	if err := a.carts.UpdateQuantity(a.cart.ID, int64(id), qty); err != nil {
		fmt.Fprintf(a.out, "Could not update quantity: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Updated.")
}

func (a *app) removeItem() {
	id, ok := a.promptInt("Product id: ")
	if !ok {
		return
	}
	if err := a.carts.RemoveProduct(a.cart.ID, int64(id)); err != nil {
		fmt.Fprintf(a.out, "Could not remove item: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Removed.")
}

func (a *app) applyCoupon() {
	code := a.prompt("Coupon code: ")
	cp, err := a.carts.ApplyCoupon(a.cart.ID, code)
	if err != nil {
		a.logger.Warn().Err(err).Str("code", code).Msg("coupon rejected")
		fmt.Fprintf(a.out, "Could not apply coupon: %v\n", err)
		return
	}
	a.logger.Info().Str("code", cp.Code).Msg("coupon applied")
	fmt.Fprintf(a.out, "Coupon %s applied.\n", cp.Code)
}

func (a *app) removeCoupon() {
	code := a.prompt("Coupon code: ")
	if err := a.carts.RemoveCoupon(a.cart.ID, code); err != nil {
		fmt.Fprintf(a.out, "Could not remove coupon: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Coupon removed.")
}

func (a *app) estimateShipping() {
	cep := a.prompt("Destination CEP (8 digits): ")
	quote, err := a.estimator.Quote(cep, a.cart.TotalQuantity())
	if err != nil {
		fmt.Fprintf(a.out, "Could not estimate shipping: %v\n", err)
		return
	}
	cost := quote.Cost
	if a.cart.Summary().Subtotal >= a.cfg.FreeShippingMin {
		cost = 0
		fmt.Fprintf(a.out, "Order qualifies for free shipping (subtotal over %s).\n", a.money(a.cfg.FreeShippingMin))
	}
	fmt.Fprintf(a.out, "Region: %s — cost %s, delivery in ~%d days\n", quote.Region, a.money(cost), quote.ETADays)
	addr := &domain.Address{PostalCode: cep}
	if err := a.carts.SetShipping(a.cart.ID, addr, cost); err != nil {
		fmt.Fprintf(a.out, "Could not set shipping: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Shipping cost applied to cart.")
}

func (a *app) doCheckout() {
	order, err := a.checkout.Checkout(a.cart.ID)
	if err != nil {
		a.logger.Warn().Err(err).Str("cart_id", a.cart.ID).Msg("checkout failed")
		fmt.Fprintf(a.out, "Checkout failed: %v\n", err)
		return
	}
	a.logger.Info().Str("order_id", order.ID.String()).Float64("total", order.Summary.Total).Msg("order confirmed")
	a.printOrder(order)
}

func (a *app) printOrder(o *domain.Order) {
	fmt.Fprintf(a.out, "\nOrder %s — %s\n", o.ID, o.Status)
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tQTY\tUNIT\tSUBTOTAL")
	for _, item := range o.Items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			item.ProductName, item.Quantity, a.money(item.UnitPrice), a.money(item.Subtotal))
	}
	w.Flush()
	if len(o.CouponCodes) > 0 {
		fmt.Fprintf(a.out, "Coupons: %s\n", strings.Join(o.CouponCodes, ", "))
	}
	fmt.Fprintf(a.out, "Shipping: %s\n", a.money(o.Summary.ShippingCost))
	fmt.Fprintf(a.out, "Total: %s\n", a.money(o.Summary.Total))
	fmt.Fprintf(a.out, "Processed at %s\n", o.ProcessedAt.Format("2006-01-02 15:04:05"))
}

func (a *app) orderHistory() {
	history := a.orders.ListByUser(a.cart.UserID)
	if len(history) == 0 {
		fmt.Fprintln(a.out, "No orders yet.")
		return
	}
	for _, o := range history {
		fmt.Fprintf(a.out, "%s  %s  %d item(s)  %s\n",
			o.ProcessedAt.Format("2006-01-02 15:04"), o.ID, len(o.Items), a.money(o.Summary.Total))
	}
}

func (a *app) listCoupons() {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tTYPE\tVALUE\tMINIMUM\tVALID")
	for _, c := range a.coupons.List() {
		value := fmt.Sprintf("%.0f%%", c.Value)
		if c.Type == domain.CouponFixed {
			value = a.money(c.Value)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", c.Code, c.Type, value, a.money(c.MinimumAmount), c.IsValid())
	}
	w.Flush()
}

func (a *app) clearCart() {
	if err := a.carts.ClearCart(a.cart.ID); err != nil {
		fmt.Fprintf(a.out, "Could not clear cart: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Cart cleared.")
}
