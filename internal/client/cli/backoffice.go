package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/printdvor/storefront-cli/internal/client/api"
	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/printdvor/storefront-cli/internal/client/nav"
)

// Dashboard routes the signed-in user to their surface: admins and managers
// enter the back-office loop, everyone else sees their profile. Without a
// session the user is told to sign in.
func (a *App) Dashboard(ctx context.Context) error {
	surface, ok := nav.TargetSurfaceFor(a.sessions.User())
	if !ok {
		printlnFn("Sign in first: login")
		return nil
	}

	switch surface {
	case nav.SurfaceAdmin, nav.SurfaceManager:
		scanner := bufio.NewScanner(os.Stdin)
		a.runBackoffice(ctx, surface, scanner)
	default:
		return a.Profile(ctx)
	}
	return nil
}

// runBackoffice is the manager/admin loop. User management is an admin-only
// command; the server re-checks every call regardless.
func (a *App) runBackoffice(ctx context.Context, surface nav.Surface, scanner *bufio.Scanner) {
	printlnFn("Entering " + string(surface) + " (type 'help' for commands, 'back' to leave)")

	for {
		printlnFn(string(surface) + "> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("stats")
			printlnFn("orders, order-status <id> <status>")
			printlnFn("products, product-add, product-edit <id>, product-rm <id>")
			printlnFn("categories, category-add, category-rm <id>")
			printlnFn("suppliers, supplier-add, supplier-rm <id>")
			if surface == nav.SurfaceAdmin {
				printlnFn("order-rm <id>")
				printlnFn("users, user-add, user-role <id> <role>, user-rm <id>")
			}
			printlnFn("back")

		case "stats":
			a.printStats(ctx)

		case "orders":
			a.listAllOrders(ctx)

		case "order-status":
			if len(args) < 2 {
				printlnFn("Usage: order-status <id> <pending|confirmed|shipped|delivered>")
				continue
			}
			a.setOrderStatus(ctx, args[0], args[1])

		case "order-rm":
			if surface != nav.SurfaceAdmin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if id, err := argID(args, "Usage: order-rm <id>"); err == nil {
				if err := a.orders.Delete(ctx, id); err != nil {
					printlnFn("Could not delete order:", err.Error())
				} else {
					printlnFn("Order deleted")
				}
			}

		case "products":
			_ = a.Catalog(ctx, args)

		case "product-add":
			a.upsertProduct(ctx, 0)

		case "product-edit":
			if id, err := argID(args, "Usage: product-edit <id>"); err == nil {
				a.upsertProduct(ctx, id)
			}

		case "product-rm":
			if id, err := argID(args, "Usage: product-rm <id>"); err == nil {
				if err := a.backoffice.DeleteProduct(ctx, id); err != nil {
					printlnFn("Could not delete product:", err.Error())
				} else {
					printlnFn("Product deleted")
				}
			}

		case "categories":
			a.listCategories(ctx)

		case "category-add":
			a.addCategory(ctx)

		case "category-rm":
			if id, err := argID(args, "Usage: category-rm <id>"); err == nil {
				if err := a.backoffice.DeleteCategory(ctx, id); err != nil {
					printlnFn("Could not delete category:", err.Error())
				} else {
					printlnFn("Category deleted")
				}
			}

		case "suppliers":
			a.listSuppliers(ctx)

		case "supplier-add":
			a.addSupplier(ctx)

		case "supplier-rm":
			if id, err := argID(args, "Usage: supplier-rm <id>"); err == nil {
				if err := a.backoffice.DeleteSupplier(ctx, id); err != nil {
					printlnFn("Could not delete supplier:", err.Error())
				} else {
					printlnFn("Supplier deleted")
				}
			}

		case "users":
			if surface != nav.SurfaceAdmin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			a.listUsers(ctx)

		case "user-add":
			if surface != nav.SurfaceAdmin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			a.addUser(ctx)

		case "user-role":
			if surface != nav.SurfaceAdmin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if len(args) < 2 {
				printlnFn("Usage: user-role <id> <USER|MANAGER|ADMIN>")
				continue
			}
			a.setUserRole(ctx, args[0], args[1])

		case "user-rm":
			if surface != nav.SurfaceAdmin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if id, err := argID(args, "Usage: user-rm <id>"); err == nil {
				if err := a.backoffice.DeleteUser(ctx, id); err != nil {
					printlnFn("Could not delete user:", err.Error())
				} else {
					printlnFn("User deleted")
				}
			}

		case "back", "exit", "quit":
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) printStats(ctx context.Context) {
	stats, err := a.backoffice.Stats(ctx)
	if err != nil {
		printlnFn("Could not load stats:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Users: %d  Orders: %d  Products: %d  Revenue: %s RUB",
		stats.UsersCount, stats.OrdersCount, stats.ProductsCount, stats.TotalRevenue))
	for _, o := range stats.RecentOrders {
		printOrder(o)
	}
}

func (a *App) listAllOrders(ctx context.Context) {
	orders, err := a.orders.All(ctx)
	if err != nil {
		printlnFn("Could not load orders:", err.Error())
		return
	}
	for _, o := range orders {
		printlnFn(fmt.Sprintf("Order #%d  %s  %s RUB  %s  user:%s", o.ID, o.CreatedAt, o.TotalPrice, o.Status, o.User.Email))
	}
}

func (a *App) setOrderStatus(ctx context.Context, rawID, status string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		printlnFn("Usage: order-status <id> <pending|confirmed|shipped|delivered>")
		return
	}
	order, err := a.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		printlnFn("Could not update order:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Order #%d is now %s", order.ID, order.Status))
}

// upsertProduct prompts for the product form; id 0 means create. An empty
// image path uploads no image, which keeps the current one on edit.
func (a *App) upsertProduct(ctx context.Context, id int) {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return
	}
	price, err := GetFloat(a.reader, "Price (RUB)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	quantity, err := GetInt(a.reader, "Quantity in stock", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	categoryID, err := GetInt(a.reader, "Category id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	supplierID, err := GetInt(a.reader, "Supplier id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	imagePath, err := getSimpleText(a.reader, "Image file path (empty to skip)", os.Stdout)
	if err != nil {
		return
	}

	var (
		image     []byte
		imageName string
	)
	if imagePath != "" {
		image, err = os.ReadFile(imagePath)
		if err != nil {
			printlnFn("Could not read image:", err.Error())
			return
		}
		imageName = imagePath[strings.LastIndex(imagePath, "/")+1:]
	}

	form := api.ProductForm{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		CategoryID:  categoryID,
		SupplierID:  supplierID,
	}

	var product *models.Product
	if id == 0 {
		product, err = a.backoffice.CreateProduct(ctx, form, image, imageName)
	} else {
		product, err = a.backoffice.UpdateProduct(ctx, id, form, image, imageName)
	}
	if err != nil {
		printlnFn("Could not save product:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Saved product #%d %s", product.ID, product.Name))
}

func (a *App) listCategories(ctx context.Context) {
	categories, err := a.backoffice.Categories(ctx)
	if err != nil {
		printlnFn("Could not load categories:", err.Error())
		return
	}
	for _, c := range categories {
		printlnFn(fmt.Sprintf("#%d  %s  %s", c.ID, c.Name, c.Description))
	}
}

func (a *App) addCategory(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return
	}

	category, err := a.backoffice.CreateCategory(ctx, api.CategoryUpsert{Name: name, Description: description})
	if err != nil {
		printlnFn("Could not create category:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Created category #%d %s", category.ID, category.Name))
}

func (a *App) listSuppliers(ctx context.Context) {
	suppliers, err := a.backoffice.Suppliers(ctx)
	if err != nil {
		printlnFn("Could not load suppliers:", err.Error())
		return
	}
	for _, s := range suppliers {
		printlnFn(fmt.Sprintf("#%d  %s  %s  %s", s.ID, s.Name, s.Address, s.Phone))
	}
}

func (a *App) addSupplier(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Supplier name", os.Stdout)
	if err != nil {
		return
	}
	address, err := getSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return
	}

	supplier, err := a.backoffice.CreateSupplier(ctx, api.SupplierUpsert{Name: name, Address: address, Phone: phone})
	if err != nil {
		printlnFn("Could not create supplier:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Created supplier #%d %s", supplier.ID, supplier.Name))
}

func (a *App) listUsers(ctx context.Context) {
	users, err := a.backoffice.Users(ctx)
	if err != nil {
		printlnFn("Could not load users:", err.Error())
		return
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("#%d  %-30s %-15s %s", u.ID, u.Email, u.Phone, u.Role))
	}
}

func (a *App) addUser(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return
	}
	role, err := getSimpleText(a.reader, "Role (USER|MANAGER|ADMIN)", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return
	}

	user, err := a.backoffice.CreateUser(ctx, api.UserUpsert{Email: email, Phone: phone, Role: role, Password: password})
	if err != nil {
		printlnFn("Could not create user:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Created user #%d %s", user.ID, user.Email))
}

func (a *App) setUserRole(ctx context.Context, rawID, role string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		printlnFn("Usage: user-role <id> <USER|MANAGER|ADMIN>")
		return
	}
	user, err := a.backoffice.UpdateUser(ctx, id, api.UserUpsert{Role: role})
	if err != nil {
		printlnFn("Could not update user:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("User #%d is now %s", user.ID, user.Role))
}
