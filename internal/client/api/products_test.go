package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateProduct_SendsMultipartForm(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/product", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Business cards", r.FormValue("name"))
		require.Equal(t, "500", r.FormValue("price"))
		require.Equal(t, "10", r.FormValue("quantity"))
		require.Equal(t, "2", r.FormValue("categoryId"))
		require.Equal(t, "3", r.FormValue("supplierId"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "cards.png", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3}, data)

		_, _ = w.Write([]byte(`{"id":42,"name":"Business cards","price":"500"}`))
	})

	c := newTestClient(t, handler, &fakeTokens{token: "tok"})

	form := ProductForm{Name: "Business cards", Description: "90x50", Price: 500, Quantity: 10, CategoryID: 2, SupplierID: 3}
	product, err := c.CreateProduct(context.Background(), form, []byte{1, 2, 3}, "cards.png")
	require.NoError(t, err)
	require.Equal(t, 42, product.ID)
}

func TestUpdateProduct_WithoutImageOmitsFilePart(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/product/42", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("image")
		require.Error(t, err) // no image part: keep the current picture

		_, _ = w.Write([]byte(`{"id":42,"name":"Business cards v2","price":"550"}`))
	})

	c := newTestClient(t, handler, &fakeTokens{token: "tok"})

	form := ProductForm{Name: "Business cards v2", Price: 550, Quantity: 10, CategoryID: 2, SupplierID: 3}
	product, err := c.UpdateProduct(context.Background(), 42, form, nil, "")
	require.NoError(t, err)
	require.Equal(t, "Business cards v2", product.Name)
}

func TestProductImage_ReturnsRawBytesUncached(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/product/7/image", r.URL.Path)
		calls++
		_, _ = w.Write([]byte{0x89, 0x50})
	})

	c := newTestClient(t, handler, &fakeTokens{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		data, err := c.ProductImage(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, []byte{0x89, 0x50}, data)
	}
	require.Equal(t, 2, calls)
}
