package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jay10z/it-equipment-ordering-system/internal/catalog"
	"github.com/jay10z/it-equipment-ordering-system/internal/domain"
	"github.com/jay10z/it-equipment-ordering-system/internal/session"
	apperrors "github.com/jay10z/it-equipment-ordering-system/pkg/errors"
	"github.com/jay10z/it-equipment-ordering-system/pkg/tracing"
)

const usage = `Usage: storefront <command> [arguments]

Catalog:
  products [category]            list products, optionally by category
  categories                     list product categories

Cart:
  cart                           show the cart
  cart add <product-id>          add one unit of a product
  cart qty <line> <delta>        change a line's quantity by delta
  cart rm <line>                 remove a line
  cart clear                     empty the cart

Account:
  login <email> <password>       log in and store the credential
  register <name> <email> <password> [phone]
  logout                         discard the stored credential
  whoami                         show the logged-in account

Orders:
  checkout                       submit the cart as an order
  my-orders                      list your orders

Admin:
  orders                         list all orders
  users                          list all accounts
  stock <product-id> <stock>     set a product's stock level
  order-status <order-id> <status>
`

// Run dispatches a single CLI command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}

	ctx, span := tracing.Start(ctx, "storefront."+args[0])
	defer span.End()

	switch args[0] {
	case "products":
		return a.cmdProducts(ctx, args[1:])
	case "categories":
		return a.cmdCategories()
	case "cart":
		return a.cmdCart(ctx, args[1:])
	case "checkout":
		return a.cmdCheckout(ctx)
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "register":
		return a.cmdRegister(ctx, args[1:])
	case "logout":
		if err := a.sessions.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out.")
		return nil
	case "whoami":
		return a.cmdWhoami(ctx)
	case "my-orders":
		return a.cmdOrders(ctx, false)
	case "orders":
		return a.cmdOrders(ctx, true)
	case "users":
		return a.cmdUsers(ctx)
	case "stock":
		return a.cmdStock(ctx, args[1:])
	case "order-status":
		return a.cmdOrderStatus(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return apperrors.InvalidInput("unknown command: " + args[0])
	}
}

func (a *App) cmdProducts(ctx context.Context, args []string) error {
	a.catalog.Load(ctx)

	products := a.catalog.Products()
	if len(args) > 0 {
		products = a.catalog.ByCategory(strings.Join(args, " "))
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintf(a.out, "%3d  %-32s %-12s %14s  %s\n",
			p.ID, p.Name, p.Category, domain.FormatPrice(p.Price), p.Availability)
	}
	return nil
}

func (a *App) cmdCategories() error {
	for _, c := range catalog.Categories() {
		fmt.Fprintln(a.out, c)
	}
	return nil
}

func (a *App) cmdCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.printCart(ctx)
	}

	switch args[0] {
	case "add":
		if len(args) != 2 {
			return apperrors.InvalidInput("usage: cart add <product-id>")
		}
		a.catalog.Load(ctx)
		product, err := a.catalog.FindByRef(args[1])
		if err != nil {
			return err
		}
		if _, err := a.carts.Add(ctx, product); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added %s to cart.\n", product.Name)
		return a.printCart(ctx)

	case "qty":
		if len(args) != 3 {
			return apperrors.InvalidInput("usage: cart qty <line> <delta>")
		}
		line, err := parseLine(args[1])
		if err != nil {
			return err
		}
		delta, err := strconv.Atoi(args[2])
		if err != nil {
			return apperrors.InvalidInput("invalid quantity delta: " + args[2])
		}
		if _, err := a.carts.UpdateQuantity(ctx, line, delta); err != nil {
			return err
		}
		return a.printCart(ctx)

	case "rm":
		if len(args) != 2 {
			return apperrors.InvalidInput("usage: cart rm <line>")
		}
		line, err := parseLine(args[1])
		if err != nil {
			return err
		}
		if _, err := a.carts.Remove(ctx, line); err != nil {
			return err
		}
		return a.printCart(ctx)

	case "clear":
		if err := a.carts.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Cart cleared.")
		return nil

	default:
		return apperrors.InvalidInput("unknown cart command: " + args[0])
	}
}

// parseLine converts a 1-based display line number to a cart index.
func parseLine(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, apperrors.InvalidInput("invalid cart line: " + s)
	}
	return n - 1, nil
}

func (a *App) printCart(ctx context.Context) error {
	c := a.carts.Get(ctx)
	if c.IsEmpty() {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	for i, li := range c {
		fmt.Fprintf(a.out, "%3d  %-32s x%-3d %14s\n",
			i+1, li.Name, li.Quantity, domain.FormatPrice(li.UnitPrice*float64(li.Quantity)))
	}
	fmt.Fprintf(a.out, "Total: %s (%d items)\n", domain.FormatPrice(c.Total()), c.ItemCount())
	return nil
}

func (a *App) cmdCheckout(ctx context.Context) error {
	conf, err := a.checkout.Checkout(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order #%d confirmed: %d items, %s\n",
		conf.OrderID, conf.ItemsCount, domain.FormatPrice(conf.Total))
	return nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return apperrors.InvalidInput("usage: login <email> <password>")
	}

	user, err := a.sessions.Login(ctx, session.LoginInput{
		Email:    args[0],
		Password: args[1],
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", user.FullName)
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return apperrors.InvalidInput("usage: register <name> <email> <password> [phone]")
	}

	input := session.RegisterInput{
		FullName: args[0],
		Email:    args[1],
		Password: args[2],
	}
	if len(args) == 4 {
		input.Phone = args[3]
	}

	if err := a.sessions.Register(ctx, input); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. You can now log in.")
	return nil
}

func (a *App) cmdWhoami(ctx context.Context) error {
	user, ok := a.creds.User(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	role := "customer"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", user.FullName, user.Email, role)
	return nil
}

func (a *App) cmdOrders(ctx context.Context, all bool) error {
	var (
		orders []domain.Order
		err    error
	)
	if all {
		orders, err = a.backend.Orders(ctx)
	} else {
		orders, err = a.backend.MyOrders(ctx)
	}
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders.")
		return nil
	}

	for _, o := range orders {
		fmt.Fprintf(a.out, "#%-5d %-10s %14s  %s\n",
			o.ID, o.Status, domain.FormatPrice(o.TotalAmount), o.CreatedAt)
		for _, li := range o.Items {
			fmt.Fprintf(a.out, "       %-32s x%-3d %14s\n",
				li.ProductName, li.Quantity, domain.FormatPrice(li.Price*float64(li.Quantity)))
		}
	}
	return nil
}

func (a *App) cmdUsers(ctx context.Context) error {
	users, err := a.backend.Users(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		role := "customer"
		if u.IsAdmin {
			role = "admin"
		}
		fmt.Fprintf(a.out, "%3d  %-24s %-32s %s\n", u.ID, u.FullName, u.Email, role)
	}
	return nil
}

func (a *App) cmdStock(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return apperrors.InvalidInput("usage: stock <product-id> <stock>")
	}

	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return apperrors.InvalidInput("invalid product id: " + args[0])
	}
	stock, err := strconv.Atoi(args[1])
	if err != nil || stock < 0 {
		return apperrors.InvalidInput("invalid stock level: " + args[1])
	}

	product, err := a.backend.UpdateStock(ctx, productID, stock)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: stock %d (%s)\n", product.Name, product.Stock, product.Availability)
	return nil
}

func (a *App) cmdOrderStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return apperrors.InvalidInput("usage: order-status <order-id> <status>")
	}

	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return apperrors.InvalidInput("invalid order id: " + args[0])
	}

	status := args[1]
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusCompleted, domain.OrderStatusCancelled:
	default:
		return apperrors.InvalidInput("invalid order status: " + status)
	}

	if err := a.backend.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order #%d is now %s.\n", orderID, status)
	return nil
}
