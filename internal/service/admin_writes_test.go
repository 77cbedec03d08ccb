package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
)

// bodilessRemote acknowledges every write with an empty 201 or 204.
func bodilessRemote(t *testing.T) *apiclient.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	created := func(c *gin.Context) { c.Status(http.StatusCreated) }
	noContent := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.POST("/api/productos", created)
	r.PUT("/api/productos/:id", noContent)
	r.POST("/api/usuarios", created)
	r.PUT("/api/usuarios/:id", noContent)
	r.POST("/api/categorias", created)
	r.PUT("/api/categorias/:id", noContent)
	r.GET("/api/categorias", func(c *gin.Context) {
		c.JSON(http.StatusOK, []domain.Category{{ID: 1, Name: "Balones"}})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return apiclient.New(apiclient.Config{BaseURL: srv.URL})
}

func TestAdminWrites_EmptySuccessBody(t *testing.T) {
	ctx := context.Background()
	api := bodilessRemote(t)

	pe := NewProductEditor(api, api)
	s := pe.Save(ctx, domain.Product{Name: "Canilleras", Price: 9990, Stock: 8})
	p, ok := s.Value()
	require.True(t, ok, s.Message)
	assert.Equal(t, "Canilleras", p.Name)
	s = pe.Save(ctx, domain.Product{ID: 7, Name: "Canilleras", Price: 8990})
	require.True(t, s.IsSuccess(), s.Message)

	ue := NewUserEditor(api)
	us := ue.Save(ctx, domain.User{Name: "Ana", Email: "ana@kjm.cl", Role: domain.RoleCustomer, Password: "pw"})
	require.True(t, us.IsSuccess(), us.Message)
	us = ue.Save(ctx, domain.User{ID: 3, Name: "Ana", Email: "ana@kjm.cl", Role: domain.RoleAdmin})
	require.True(t, us.IsSuccess(), us.Message)

	ca := NewCategoryAdmin(api)
	cs := ca.Create(ctx, "Balones", "", "")
	cats, ok := cs.Value()
	require.True(t, ok, cs.Message)
	assert.Len(t, cats, 1)
	cs = ca.Update(ctx, 1, "Balones", "Fútbol", "")
	require.True(t, cs.IsSuccess(), cs.Message)
	assert.True(t, ca.State().IsSuccess())
}
