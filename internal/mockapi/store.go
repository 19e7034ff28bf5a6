// Package mockapi implements an in-memory mock of the storefront backend.
// It speaks the same envelope, pagination shape, and routes as the real
// service, which makes it usable both as a development server and as the
// backend for end-to-end tests.
//
// Package mockapi 实现店面后端的内存模拟。
// 它使用与真实服务相同的信封、分页形状和路由，
// 使其既可用作开发服务器，也可用作端到端测试的后端。
package mockapi

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/yourusername/storefront/pkg/model"
)

// Store errors surfaced to handlers and turned into failed envelopes.
// 暴露给处理器并转换为失败信封的存储错误。
var (
	ErrNotFound          = errors.New("resource not found")
	ErrEmailTaken        = errors.New("email is already registered")
	ErrBadCredentials    = errors.New("invalid email or password")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrTokenExpired      = errors.New("reset token has expired")
	ErrTokenInvalid      = errors.New("invalid reset token")
	ErrBadTransition     = errors.New("illegal status transition")
)

// userRecord is a stored account with its password digest.
// userRecord 是带有密码摘要的已存储账户。
type userRecord struct {
	user         model.User
	passwordHash string
}

// resetRecord is an outstanding password reset token.
// resetRecord 是未完成的密码重置令牌。
type resetRecord struct {
	email     string
	expiresAt time.Time
}

// Store holds all mock backend state. All methods are safe for concurrent
// use.
//
// Store 持有所有模拟后端状态。所有方法都可安全并发使用。
type Store struct {
	mu          sync.RWMutex
	products    map[string]model.Product
	users       map[string]*userRecord // keyed by email / 以电子邮件为键
	carts       map[string]*model.Cart // keyed by user id / 以用户ID为键
	orders      map[string]model.Order
	resetTokens map[string]resetRecord
	resetTTL    time.Duration
}

// NewStore creates an empty store. Reset tokens expire after one hour.
//
// NewStore 创建一个空存储。重置令牌一小时后过期。
func NewStore() *Store {
	return &Store{
		products:    make(map[string]model.Product),
		users:       make(map[string]*userRecord),
		carts:       make(map[string]*model.Cart),
		orders:      make(map[string]model.Order),
		resetTokens: make(map[string]resetRecord),
		resetTTL:    time.Hour,
	}
}

// Seed populates the store with a small demo catalog and an admin account.
//
// Seed 用一个小的演示目录和一个管理员账户填充存储。
func (s *Store) Seed() {
	now := time.Now()
	demo := []model.Product{
		{Name: "Anime Figure", Description: "Hand-painted collectible figure", Price: 49.99, Category: "anime", StockQuantity: 25, ImageURL: "/img/figure.png"},
		{Name: "Movie Poster", Description: "Limited edition print", Price: 12.5, Category: "posters", StockQuantity: 100, ImageURL: "/img/poster.png"},
		{Name: "Custom Mug", Description: "Personalized ceramic mug", Price: 15, Category: "custom", StockQuantity: 60, ImageURL: "/img/mug.png"},
		{Name: "Mechanical Keyboard", Description: "Hot-swappable switches", Price: 89.99, Category: "electronics", StockQuantity: 15, ImageURL: "/img/keyboard.png"},
	}
	s.mu.Lock()
	for _, p := range demo {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		p.UpdatedAt = now
		s.products[p.ID] = p
	}
	admin := model.User{
		ID:        uuid.NewString(),
		Email:     "admin@store.local",
		FirstName: "Store",
		LastName:  "Admin",
		Role:      model.RoleAdmin,
		CreatedAt: now,
	}
	s.users[admin.Email] = &userRecord{user: admin, passwordHash: hashPassword("admin123")}
	s.mu.Unlock()
}

// hashPassword digests a password for storage. The mock has no real
// security requirements, so an unsalted digest is enough.
//
// hashPassword 对密码进行摘要以便存储。模拟没有真正的安全要求，
// 因此未加盐的摘要就足够了。
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// --- Users / 用户 ---

// CreateUser registers a new customer account.
//
// CreateUser 注册新的客户账户。
func (s *Store) CreateUser(req model.RegisterRequest) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, exists := s.users[email]; exists {
		return model.User{}, ErrEmailTaken
	}
	user := model.User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      model.RoleCustomer,
		CreatedAt: time.Now(),
	}
	s.users[email] = &userRecord{user: user, passwordHash: hashPassword(req.Password)}
	return user, nil
}

// Authenticate checks credentials and returns the matching account.
//
// Authenticate 检查凭据并返回匹配的账户。
func (s *Store) Authenticate(email, password string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok || rec.passwordHash != hashPassword(password) {
		return model.User{}, ErrBadCredentials
	}
	return rec.user, nil
}

// UserByID returns an account by its identifier.
//
// UserByID 按标识符返回账户。
func (s *Store) UserByID(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.users {
		if rec.user.ID == id {
			return rec.user, nil
		}
	}
	return model.User{}, ErrNotFound
}

// UpdateUser applies a profile update to an account.
//
// UpdateUser 将个人资料更新应用于账户。
func (s *Store) UpdateUser(id string, req model.UpdateProfileRequest) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.users {
		if rec.user.ID != id {
			continue
		}
		if req.FirstName != nil {
			rec.user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			rec.user.LastName = *req.LastName
		}
		return rec.user, nil
	}
	return model.User{}, ErrNotFound
}

// IssueResetToken creates a password reset token for an account.
// Unknown emails succeed silently so the endpoint does not leak accounts.
//
// IssueResetToken 为账户创建密码重置令牌。
// 未知电子邮件静默成功，因此端点不会泄露账户。
func (s *Store) IssueResetToken(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := s.users[email]; !ok {
		return "", false
	}
	token := uuid.NewString()
	s.resetTokens[token] = resetRecord{email: email, expiresAt: time.Now().Add(s.resetTTL)}
	return token, true
}

// ResetPassword consumes a reset token and sets a new password.
//
// ResetPassword 消费重置令牌并设置新密码。
func (s *Store) ResetPassword(token, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.resetTokens[token]
	if !ok {
		return ErrTokenInvalid
	}
	if time.Now().After(rec.expiresAt) {
		delete(s.resetTokens, token)
		return ErrTokenExpired
	}
	user, ok := s.users[rec.email]
	if !ok {
		return ErrTokenInvalid
	}
	user.passwordHash = hashPassword(newPassword)
	delete(s.resetTokens, token)
	return nil
}

// ExpireResetToken backdates a token so it reads as expired. Test hook.
//
// ExpireResetToken 将令牌的时间回拨使其读取为已过期。测试钩子。
func (s *Store) ExpireResetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.resetTokens[token]; ok {
		rec.expiresAt = time.Now().Add(-time.Minute)
		s.resetTokens[token] = rec
	}
}

// --- Products / 产品 ---

// Products returns all products sorted by name.
//
// Products 返回按名称排序的所有产品。
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Product returns one product by id.
//
// Product 按ID返回一个产品。
func (s *Store) Product(id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, errors.Wrap(ErrNotFound, "product "+id)
	}
	return p, nil
}

// CreateProduct adds a product to the catalog.
//
// CreateProduct 向目录添加产品。
func (s *Store) CreateProduct(req model.CreateProductRequest) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	p := model.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.products[p.ID] = p
	return p
}

// UpdateProduct applies a partial update to a product.
//
// UpdateProduct 对产品应用部分更新。
func (s *Store) UpdateProduct(id string, req model.UpdateProductRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, errors.Wrap(ErrNotFound, "product "+id)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return p, nil
}

// DeleteProduct removes a product from the catalog.
//
// DeleteProduct 从目录中删除产品。
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return errors.Wrap(ErrNotFound, "product "+id)
	}
	delete(s.products, id)
	return nil
}

// --- Carts / 购物车 ---

// cartFor returns the user's cart, creating it when missing.
// Caller holds the write lock.
//
// cartFor 返回用户的购物车，缺失时创建。调用者持有写锁。
func (s *Store) cartFor(userID string) *model.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &model.Cart{ID: uuid.NewString(), UserID: userID}
		s.carts[userID] = cart
	}
	return cart
}

// recalc refreshes the server-computed subtotals and total of a cart.
//
// recalc 刷新购物车中服务器计算的小计和总计。
func recalc(cart *model.Cart) {
	total := 0.0
	for i := range cart.Items {
		cart.Items[i].Subtotal = cart.Items[i].Price * float64(cart.Items[i].Quantity)
		total += cart.Items[i].Subtotal
	}
	cart.TotalAmount = total
	cart.UpdatedAt = time.Now()
}

// Cart returns a snapshot of the user's cart.
//
// Cart 返回用户购物车的快照。
func (s *Store) Cart(userID string) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.cartFor(userID)
}

// AddCartItem adds quantity units of a product to the user's cart,
// accumulating onto an existing line. Stock is checked against the
// resulting quantity.
//
// AddCartItem 向用户的购物车添加数量为quantity的产品，累加到现有行上。
// 库存根据结果数量进行检查。
func (s *Store) AddCartItem(userID, productID string, quantity int) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return model.Cart{}, errors.Wrap(ErrNotFound, "product "+productID)
	}
	cart := s.cartFor(userID)

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			if cart.Items[i].Quantity+quantity > p.StockQuantity {
				return model.Cart{}, ErrInsufficientStock
			}
			cart.Items[i].Quantity += quantity
			recalc(cart)
			return *cart, nil
		}
	}

	if quantity > p.StockQuantity {
		return model.Cart{}, ErrInsufficientStock
	}
	cart.Items = append(cart.Items, model.CartItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		Price:       p.Price,
	})
	recalc(cart)
	return *cart, nil
}

// SetCartItemQuantity replaces the quantity of a cart line.
//
// SetCartItemQuantity 替换购物车行的数量。
func (s *Store) SetCartItemQuantity(userID, productID string, quantity int) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return model.Cart{}, errors.Wrap(ErrNotFound, "product "+productID)
	}
	if quantity > p.StockQuantity {
		return model.Cart{}, ErrInsufficientStock
	}
	cart := s.cartFor(userID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			recalc(cart)
			return *cart, nil
		}
	}
	return model.Cart{}, errors.Wrap(ErrNotFound, "cart item "+productID)
}

// RemoveCartItem deletes a line from the user's cart.
//
// RemoveCartItem 从用户的购物车中删除一行。
func (s *Store) RemoveCartItem(userID, productID string) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(userID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			recalc(cart)
			return *cart, nil
		}
	}
	return model.Cart{}, errors.Wrap(ErrNotFound, "cart item "+productID)
}

// ClearCart empties the user's cart.
//
// ClearCart 清空用户的购物车。
func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(userID)
	cart.Items = nil
	recalc(cart)
}

// --- Orders / 订单 ---

// CreateOrder freezes the user's cart into a new order, decrements stock,
// and clears the server-side cart.
//
// CreateOrder 将用户的购物车冻结为新订单，递减库存，并清空服务器端购物车。
func (s *Store) CreateOrder(userID string, address model.Address) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(userID)
	if len(cart.Items) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	for _, item := range cart.Items {
		p, ok := s.products[item.ProductID]
		if !ok {
			return model.Order{}, errors.Wrap(ErrNotFound, "product "+item.ProductID)
		}
		if item.Quantity > p.StockQuantity {
			return model.Order{}, ErrInsufficientStock
		}
	}

	now := time.Now()
	order := model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Status:          model.StatusPending,
		ShippingAddress: address,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, item := range cart.Items {
		p := s.products[item.ProductID]
		p.StockQuantity -= item.Quantity
		p.UpdatedAt = now
		s.products[item.ProductID] = p

		order.Items = append(order.Items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
		order.TotalAmount += item.Subtotal
	}

	cart.Items = nil
	recalc(cart)
	s.orders[order.ID] = order
	return order, nil
}

// Order returns one order by id.
//
// Order 按ID返回一个订单。
func (s *Store) Order(id string) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return model.Order{}, errors.Wrap(ErrNotFound, "order "+id)
	}
	return o, nil
}

// OrdersForUser returns a user's orders, newest first.
//
// OrdersForUser 返回用户的订单，最新的在前。
func (s *Store) OrdersForUser(userID string) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// AllOrders returns every order in the system, newest first.
//
// AllOrders 返回系统中的每个订单，最新的在前。
func (s *Store) AllOrders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// UpdateOrderStatus transitions an order to a new status, enforcing the
// order lifecycle.
//
// UpdateOrderStatus 将订单转换到新状态，强制执行订单生命周期。
func (s *Store) UpdateOrderStatus(id string, next model.OrderStatus) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return model.Order{}, errors.Wrap(ErrNotFound, "order "+id)
	}
	if !o.Status.CanTransition(next) {
		return model.Order{}, errors.Wrapf(ErrBadTransition, "%s -> %s", o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = time.Now()
	s.orders[id] = o
	return o, nil
}
