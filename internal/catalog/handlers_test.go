package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/archimart/quote-api/internal/catalog"
)

func TestConfigurationsEndpoint(t *testing.T) {
	handler := catalog.Handler{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/configurations", nil)
	rec := httptest.NewRecorder()
	handler.Configurations(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []catalog.ProductConfig `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 5)
	require.Equal(t, "ALU_PC", resp.Data[0].ID)
	require.EqualValues(t, 280, resp.Data[0].UnitRate)
}

func TestOptionsEndpoint(t *testing.T) {
	handler := catalog.Handler{}

	t.Run("pc_roof configuration", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.Options(rec, optionsRequest(t, "ALU_PC"))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Configuration catalog.ProductConfig    `json:"configuration"`
				Colors        []catalog.ColorOption    `json:"colors"`
				Shapes        []catalog.ShapeOption    `json:"shapes"`
				Addons        []catalog.AddonDefinition `json:"addons"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, catalog.CategoryPCRoof, resp.Data.Configuration.Category)
		require.Len(t, resp.Data.Colors, 4)
		require.Len(t, resp.Data.Shapes, 2)
		require.Len(t, resp.Data.Addons, 7)
	})

	t.Run("decking has no shapes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.Options(rec, optionsRequest(t, "TIMBER_HOLLOW"))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Shapes []catalog.ShapeOption `json:"shapes"`
				Colors []catalog.ColorOption `json:"colors"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Empty(t, resp.Data.Shapes)
		require.Len(t, resp.Data.Colors, 2)
	})

	t.Run("unknown configuration", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.Options(rec, optionsRequest(t, "GLASS_ROOF"))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func optionsRequest(t *testing.T, id string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/configurations/"+id+"/options", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}
