package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/service"
	"storefront/internal/state"
)

func (s *Server) registerAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/dashboard", s.dashboard)
	admin.GET("/sales", s.salesHistory)

	reports := admin.Group("/reports")
	reports.GET("/low-stock", s.lowStockReport)
	reports.GET("/top-selling", s.topSellingReport)
	reports.GET("/inventory", s.inventoryReport)

	products := admin.Group("/products")
	products.GET("", s.adminListProducts)
	products.POST("", s.createProduct)
	products.GET("/:id", s.getProduct)
	products.PUT("/:id", s.updateProduct)
	products.DELETE("/:id", s.deleteProduct)

	users := admin.Group("/users")
	users.GET("", s.listUsers)
	users.POST("", s.createUser)
	users.GET("/:id", s.getUser)
	users.PUT("/:id", s.updateUser)
	users.DELETE("/:id", s.deleteUser)

	categories := admin.Group("/categories")
	categories.GET("", s.adminListCategories)
	categories.POST("", s.createCategory)
	categories.PUT("/:id", s.updateCategory)
	categories.DELETE("/:id", s.deleteCategory)
}

// Reports

// @Summary Weekly and monthly sales
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard [get]
func (s *Server) dashboard(c *gin.Context) {
	renderState(c, session(c).Dashboard.Refresh(c.Request.Context()))
}

// @Summary Sales history, newest first
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /admin/sales [get]
func (s *Server) salesHistory(c *gin.Context) {
	renderState(c, session(c).SalesHistory.Refresh(c.Request.Context()))
}

// @Summary Low stock report
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /admin/reports/low-stock [get]
func (s *Server) lowStockReport(c *gin.Context) {
	renderState(c, session(c).LowStock.Refresh(c.Request.Context()))
}

// @Summary Top selling report
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /admin/reports/top-selling [get]
func (s *Server) topSellingReport(c *gin.Context) {
	renderState(c, session(c).TopSelling.Refresh(c.Request.Context()))
}

// @Summary Inventory by category
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /admin/reports/inventory [get]
func (s *Server) inventoryReport(c *gin.Context) {
	sf := session(c)
	ctx := c.Request.Context()
	renderState(c, service.BuildInventory(sf.Catalog.Refresh(ctx), sf.Categories.Refresh(ctx)))
}

// Products

// @Summary List products for management
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /admin/products [get]
func (s *Server) adminListProducts(c *gin.Context) {
	renderState(c, session(c).Catalog.Refresh(c.Request.Context()))
}

type productForm struct {
	Product    domain.Product    `json:"product"`
	Categories []domain.Category `json:"categories"`
}

// @Summary Load product into the editor
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /admin/products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ed := session(c).ProductEditor
	ctx := c.Request.Context()
	if err := ed.LoadCategories(ctx); err != nil {
		renderState(c, ed.State())
		return
	}
	p, st := ed.Load(ctx, id)
	if p == nil {
		renderState(c, st)
		return
	}
	renderState(c, state.Success(productForm{Product: *p, Categories: ed.Categories()}))
}

// @Summary Create product
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param input body domain.Product true "Product"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /admin/products [post]
func (s *Server) createProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ed := session(c).ProductEditor
	ed.Reset()
	p.ID = 0
	renderState(c, ed.Save(c.Request.Context(), p))
}

// @Summary Update product
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "Product ID"
// @Param input body domain.Product true "Product"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /admin/products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p.ID = id
	renderState(c, session(c).ProductEditor.Save(c.Request.Context(), p))
}

// @Summary Delete product
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]any
// @Router /admin/products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	renderState(c, session(c).Catalog.Delete(c.Request.Context(), id))
}

// Users

// @Summary List users
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /admin/users [get]
func (s *Server) listUsers(c *gin.Context) {
	renderState(c, session(c).Users.Refresh(c.Request.Context()))
}

// @Summary Load user into the editor
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "User ID"
// @Success 200 {object} map[string]any
// @Router /admin/users/{id} [get]
func (s *Server) getUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ed := session(c).UserEditor
	u, st := ed.Load(c.Request.Context(), id)
	if u == nil {
		renderState(c, st)
		return
	}
	u.Password = ""
	renderState(c, state.Success(*u))
}

// @Summary Create user
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param input body domain.User true "User"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /admin/users [post]
func (s *Server) createUser(c *gin.Context) {
	var u domain.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ed := session(c).UserEditor
	ed.Reset()
	u.ID = 0
	renderState(c, ed.Save(c.Request.Context(), u))
}

// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "User ID"
// @Param input body domain.User true "User"
// @Success 200 {object} map[string]any
// @Router /admin/users/{id} [put]
func (s *Server) updateUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var u domain.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u.ID = id
	renderState(c, session(c).UserEditor.Save(c.Request.Context(), u))
}

// @Summary Delete user
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "User ID"
// @Success 200 {object} map[string]any
// @Router /admin/users/{id} [delete]
func (s *Server) deleteUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	renderState(c, session(c).Users.Delete(c.Request.Context(), id))
}

// Categories

type categoryView struct {
	domain.Category
	ImageURL string `json:"imagenUrl,omitempty"`
}

type categoryReq struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	ImageURL    string `json:"imagenUrl"`
}

// withImages renders the category list with the image URLs remembered this session.
func withImages(admin *service.CategoryAdmin, st state.State[[]domain.Category]) state.State[[]categoryView] {
	cats, ok := st.Value()
	if !ok {
		return state.State[[]categoryView]{Kind: st.Kind, Message: st.Message, Err: st.Err}
	}
	out := make([]categoryView, 0, len(cats))
	for _, cat := range cats {
		url, _ := admin.ImageFor(cat.Name)
		out = append(out, categoryView{Category: cat, ImageURL: url})
	}
	return state.Success(out)
}

// @Summary List categories for management
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Success 200 {object} map[string]any
// @Router /admin/categories [get]
func (s *Server) adminListCategories(c *gin.Context) {
	admin := session(c).CategoryAdmin
	renderState(c, withImages(admin, admin.Refresh(c.Request.Context())))
}

// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param input body categoryReq true "Category"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /admin/categories [post]
func (s *Server) createCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	admin := session(c).CategoryAdmin
	renderState(c, withImages(admin, admin.Create(c.Request.Context(), req.Name, req.Description, req.ImageURL)))
}

// @Summary Update category
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "Category ID"
// @Param input body categoryReq true "Category"
// @Success 200 {object} map[string]any
// @Router /admin/categories/{id} [put]
func (s *Server) updateCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	admin := session(c).CategoryAdmin
	renderState(c, withImages(admin, admin.Update(c.Request.Context(), id, req.Name, req.Description, req.ImageURL)))
}

// @Summary Delete category
// @Tags admin
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]any
// @Router /admin/categories/{id} [delete]
func (s *Server) deleteCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	admin := session(c).CategoryAdmin
	renderState(c, withImages(admin, admin.Delete(c.Request.Context(), id)))
}
