package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/apiclient"
	"storefront/internal/cart"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/state"
)

// Options настройки шлюза
type Options struct {
	CORSOrigins []string
	Logger      *slog.Logger
}

type Server struct {
	engine   *gin.Engine
	sessions repository.SessionRepository
	logger   *slog.Logger
}

func NewServer(sessions repository.SessionRepository, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors.New(corsConfig(opts.CORSOrigins)))
	s := &Server{engine: r, sessions: sessions, logger: logger}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, sessionHeader)
	cfg.ExposeHeaders = []string{sessionHeader}
	return cfg
}

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// root path for liveness checks; the documented one lives under the API base path
	s.engine.GET("/healthz", s.healthz)

	v1 := s.engine.Group("/api/v1")
	v1.GET("/healthz", s.healthz)
	v1.POST("/sessions", s.createSession)

	sess := v1.Group("", s.withSession())
	{
		sess.DELETE("/sessions/current", s.deleteSession)

		sess.POST("/login", s.login)
		sess.POST("/logout", s.logout)
		sess.GET("/me", s.me)

		sess.GET("/products", s.listProducts)
		sess.GET("/categories", s.listCategories)

		c := sess.Group("/cart")
		c.GET("", s.getCart)
		c.DELETE("", s.clearCart)
		c.POST("/items", s.addCartItem)
		c.POST("/items/:id/increase", s.increaseCartItem)
		c.POST("/items/:id/decrease", s.decreaseCartItem)
		c.DELETE("/items/:id", s.removeCartItem)

		sess.GET("/checkout", s.getCheckout)
		sess.PUT("/checkout/shipping", s.selectShipping)

		sess.POST("/payment", s.createPayment)
		sess.GET("/payment", s.getPayment)
		sess.POST("/payment/reset", s.resetPayment)

		s.registerAdminRoutes(sess.Group("/admin", requireAdmin()))
	}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
}

// Sessions

// @Summary Open a storefront session
// @Tags sessions
// @Produce json
// @Success 201 {object} map[string]string
// @Router /sessions [post]
func (s *Server) createSession(c *gin.Context) {
	id, _, err := s.sessions.Create(c.Request.Context())
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	s.logger.Debug("session created", "session_id", id)
	c.Header(sessionHeader, id)
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

// @Summary Close the current session
// @Tags sessions
// @Param X-Session-ID header string true "Session"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /sessions/current [delete]
func (s *Server) deleteSession(c *gin.Context) {
	if err := s.sessions.Delete(c.Request.Context(), c.GetString(sessionIDKey)); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Auth

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param input body loginReq true "Credentials"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sf := session(c)
	renderState(c, sf.Login.Submit(c.Request.Context(), req.Email, req.Password))
}

// @Summary Log out
// @Tags auth
// @Param X-Session-ID header string true "Session"
// @Success 204
// @Router /logout [post]
func (s *Server) logout(c *gin.Context) {
	session(c).Logout()
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Router /me [get]
func (s *Server) me(c *gin.Context) {
	u := session(c).User()
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotAuthenticated.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// Catalog

// @Summary List products
// @Tags catalog
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param q query string false "Name contains"
// @Param category query int false "Category ID"
// @Success 200 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	sf := session(c)
	list := sf.Catalog
	if v := c.Query("category"); v != "" {
		id, err := parseID(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		list = sf.CategoryProducts(id)
	}
	st := list.Refresh(c.Request.Context())
	filtered := list.SetQuery(c.Query("q"))
	if st.IsSuccess() {
		st = state.Success(filtered)
	}
	renderState(c, st)
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	renderState(c, session(c).Categories.Refresh(c.Request.Context()))
}

// Cart

type cartLineView struct {
	cart.Line
	Subtotal float64 `json:"subtotal"`
}

type cartView struct {
	Lines      []cartLineView `json:"lines"`
	TotalItems int64          `json:"total_items"`
	TotalPrice float64        `json:"total_price"`
}

func newCartView(snap cart.Snapshot) cartView {
	lines := snap.Lines()
	v := cartView{
		Lines:      make([]cartLineView, 0, len(lines)),
		TotalItems: snap.TotalItems(),
		TotalPrice: snap.TotalPrice(),
	}
	for _, l := range lines {
		v.Lines = append(v.Lines, cartLineView{Line: l, Subtotal: l.Subtotal()})
	}
	return v
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} cartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, newCartView(session(c).Cart.Snapshot()))
}

type addCartItemReq struct {
	ProductID int64 `json:"product_id"`
}

// @Summary Add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param input body addCartItemReq true "Product"
// @Success 200 {object} cartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sf := session(c)
	p, err := sf.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	sf.Cart.AddProduct(p)
	c.JSON(http.StatusOK, newCartView(sf.Cart.Snapshot()))
}

// @Summary Increase line quantity
// @Tags cart
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "Product ID"
// @Success 200 {object} cartView
// @Router /cart/items/{id}/increase [post]
func (s *Server) increaseCartItem(c *gin.Context) {
	s.mutateCart(c, (*cart.Cart).IncreaseQuantity)
}

// @Summary Decrease line quantity, removing the line at 1
// @Tags cart
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "Product ID"
// @Success 200 {object} cartView
// @Router /cart/items/{id}/decrease [post]
func (s *Server) decreaseCartItem(c *gin.Context) {
	s.mutateCart(c, (*cart.Cart).DecreaseQuantity)
}

// @Summary Remove line
// @Tags cart
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "Product ID"
// @Success 200 {object} cartView
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	s.mutateCart(c, (*cart.Cart).RemoveItem)
}

// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} cartView
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	sf := session(c)
	sf.Cart.Clear()
	c.JSON(http.StatusOK, newCartView(sf.Cart.Snapshot()))
}

func (s *Server) mutateCart(c *gin.Context, op func(*cart.Cart, int64)) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	sf := session(c)
	op(sf.Cart, id)
	c.JSON(http.StatusOK, newCartView(sf.Cart.Snapshot()))
}

// Checkout & payment

type checkoutView struct {
	Cart    cartView             `json:"cart"`
	Summary service.OrderSummary `json:"summary"`
	Options []shippingOptionView `json:"options"`
	User    *userRef             `json:"user"`
}

type shippingOptionView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Selected bool    `json:"selected"`
}

type userRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// @Summary Checkout summary
// @Tags checkout
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} checkoutView
// @Router /checkout [get]
func (s *Server) getCheckout(c *gin.Context) {
	sf := session(c)
	snap := sf.Cart.Snapshot()
	selected := sf.Checkout.Selected().ID
	opts := sf.Checkout.Options()
	v := checkoutView{
		Cart:    newCartView(snap),
		Summary: sf.Checkout.Summary(snap),
		Options: make([]shippingOptionView, 0, len(opts)),
	}
	for _, o := range opts {
		v.Options = append(v.Options, shippingOptionView{ID: o.ID, Name: o.Name, Cost: o.Cost, Selected: o.ID == selected})
	}
	if u := sf.User(); u != nil {
		v.User = &userRef{ID: u.ID, Name: u.Name}
	}
	c.JSON(http.StatusOK, v)
}

type selectShippingReq struct {
	Option string `json:"option"`
}

// @Summary Select shipping option
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param input body selectShippingReq true "Option"
// @Success 200 {object} service.OrderSummary
// @Failure 400 {object} map[string]string
// @Router /checkout/shipping [put]
func (s *Server) selectShipping(c *gin.Context) {
	var req selectShippingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sf := session(c)
	if err := sf.Checkout.Select(req.Option); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sf.Checkout.Summary(sf.Cart.Snapshot()))
}

// @Summary Submit the cart as an order
// @Tags payment
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /payment [post]
func (s *Server) createPayment(c *gin.Context) {
	sf := session(c)
	renderState(c, sf.Payment.CreateOrder(c.Request.Context(), sf.Cart.Snapshot(), sf.User()))
}

// @Summary Payment state
// @Tags payment
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /payment [get]
func (s *Server) getPayment(c *gin.Context) {
	c.JSON(http.StatusOK, session(c).Payment.State())
}

// @Summary Return payment to idle
// @Tags payment
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /payment/reset [post]
func (s *Server) resetPayment(c *gin.Context) {
	sf := session(c)
	sf.Payment.Reset()
	c.JSON(http.StatusOK, sf.Payment.State())
}

// renderState writes a container state; Error states take their status from the cause.
func renderState[T any](c *gin.Context, st state.State[T]) {
	status := http.StatusOK
	if st.IsError() {
		status = stateErrorStatus(st.Err)
	}
	c.JSON(status, st)
}

// stateErrorStatus treats an Error without a known local cause as an upstream failure.
func stateErrorStatus(err error) int {
	if err == nil {
		return http.StatusBadGateway
	}
	if status := mapErrorToStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusBadGateway
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotAuthenticated), errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	}
	if code, ok := apiclient.StatusCode(err); ok {
		if code == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
