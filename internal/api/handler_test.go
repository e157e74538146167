package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/givebridge/sharepage/internal/handler/mocks"
	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/sandbox"
	"github.com/givebridge/sharepage/internal/store"
)

func newTestAPI(t *testing.T, links *mocks.ShareLinkStore, designs *mocks.DesignStore, platform *mocks.PlatformClient) *Handler {
	t.Helper()
	h, err := New(links, designs, platform, sandbox.New())
	require.NoError(t, err)
	return h
}

func serve(h *Handler, r *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, r)
	return rec
}

func TestNewAPIHandler(t *testing.T) {
	links := new(mocks.ShareLinkStore)
	designs := new(mocks.DesignStore)
	platform := new(mocks.PlatformClient)
	host := sandbox.New()

	t.Run("nil share link store returns error", func(t *testing.T) {
		h, err := New(nil, designs, platform, host)
		assert.Nil(t, h)
		assert.Error(t, err)
	})

	t.Run("nil design store returns error", func(t *testing.T) {
		h, err := New(links, nil, platform, host)
		assert.Nil(t, h)
		assert.Error(t, err)
	})

	t.Run("nil platform client returns error", func(t *testing.T) {
		h, err := New(links, designs, nil, host)
		assert.Nil(t, h)
		assert.Error(t, err)
	})

	t.Run("nil document host returns error", func(t *testing.T) {
		h, err := New(links, designs, platform, nil)
		assert.Nil(t, h)
		assert.Error(t, err)
	})

	t.Run("valid dependencies returns handler", func(t *testing.T) {
		h, err := New(links, designs, platform, host)
		assert.NoError(t, err)
		assert.NotNil(t, h)
	})
}

func TestGetDesign(t *testing.T) {
	t.Run("returns stored design with opaque additional data", func(t *testing.T) {
		designs := new(mocks.DesignStore)
		designs.On("Load", mock.Anything, "abc123def456").Return(model.TemplateDesign{
			HTML:           "<h1>{{USER_NAME}}</h1>",
			CSS:            "h1 { color: red; }",
			AdditionalData: map[string]any{"editorTheme": "dark"},
		}, nil)

		h := newTestAPI(t, new(mocks.ShareLinkStore), designs, new(mocks.PlatformClient))
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/designs/abc123def456", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var d model.TemplateDesign
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.Equal(t, "<h1>{{USER_NAME}}</h1>", d.HTML)
		assert.Equal(t, map[string]any{"editorTheme": "dark"}, d.AdditionalData)
	})

	t.Run("unknown link is 404", func(t *testing.T) {
		designs := new(mocks.DesignStore)
		designs.On("Load", mock.Anything, "missing00000").Return(model.TemplateDesign{}, store.ErrShareLinkNotFound)

		h := newTestAPI(t, new(mocks.ShareLinkStore), designs, new(mocks.PlatformClient))
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/designs/missing00000", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "share link not found")
	})
}

func TestSaveDesign(t *testing.T) {
	t.Run("persists the full design", func(t *testing.T) {
		designs := new(mocks.DesignStore)
		designs.On("Save", mock.Anything, "abc123def456", model.TemplateDesign{
			HTML:           "<p>hi</p>",
			CSS:            "p { margin: 0; }",
			AdditionalData: map[string]any{"rev": "draft-3"},
		}).Return(nil)

		body := `{"html":"<p>hi</p>","css":"p { margin: 0; }","additionalData":{"rev":"draft-3"}}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/designs/abc123def456", strings.NewReader(body))

		h := newTestAPI(t, new(mocks.ShareLinkStore), designs, new(mocks.PlatformClient))
		rec := serve(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		designs.AssertExpectations(t)
	})

	t.Run("invalid payload is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/designs/abc123def456", strings.NewReader("{not json"))

		h := newTestAPI(t, new(mocks.ShareLinkStore), new(mocks.DesignStore), new(mocks.PlatformClient))
		rec := serve(h, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown link is 404", func(t *testing.T) {
		designs := new(mocks.DesignStore)
		designs.On("Save", mock.Anything, "missing00000", mock.Anything).Return(store.ErrShareLinkNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/designs/missing00000", strings.NewReader(`{"html":"","css":""}`))
		h := newTestAPI(t, new(mocks.ShareLinkStore), designs, new(mocks.PlatformClient))
		rec := serve(h, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure surfaces as 500 with message", func(t *testing.T) {
		designs := new(mocks.DesignStore)
		designs.On("Save", mock.Anything, "abc123def456", mock.Anything).Return(errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPut, "/api/v1/designs/abc123def456", strings.NewReader(`{"html":"","css":""}`))
		h := newTestAPI(t, new(mocks.ShareLinkStore), designs, new(mocks.PlatformClient))
		rec := serve(h, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "failed to save design")
	})
}

func TestPreview(t *testing.T) {
	link := &model.ShareLink{ShareID: "abc123def456", TargetType: model.TargetNGOProfile, TargetID: "ngo-42"}
	user := &model.ProfileUser{Name: "Asha Mehta"}
	campaigns := []model.CampaignSummary{
		{Title: "Clean Water", Raised: decimal.NewFromInt(5000), Goal: decimal.NewFromInt(10000)},
	}

	t.Run("form post merges buffers with live data, persists nothing", func(t *testing.T) {
		links := new(mocks.ShareLinkStore)
		designs := new(mocks.DesignStore)
		platform := new(mocks.PlatformClient)

		links.On("Resolve", mock.Anything, "abc123def456").Return(link, nil)
		platform.On("PageData", mock.Anything, link).Return(user, campaigns, nil)

		form := url.Values{"html": {"<h1>{{USER_NAME}}</h1>"}, "css": {"h1 { color: blue; }"}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/designs/abc123def456/preview", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		h := newTestAPI(t, links, designs, platform)
		rec := serve(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<h1>Asha Mehta</h1>")
		assert.Contains(t, body, "h1 { color: blue; }")
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "sandbox")
		designs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("json post is accepted", func(t *testing.T) {
		links := new(mocks.ShareLinkStore)
		platform := new(mocks.PlatformClient)

		links.On("Resolve", mock.Anything, "abc123def456").Return(link, nil)
		platform.On("PageData", mock.Anything, link).Return(user, campaigns, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/designs/abc123def456/preview", strings.NewReader(`{"html":"{{CAMPAIGNS_HTML}}","css":""}`))
		req.Header.Set("Content-Type", "application/json")

		h := newTestAPI(t, links, new(mocks.DesignStore), platform)
		rec := serve(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Clean Water")
	})

	t.Run("unknown link is 404", func(t *testing.T) {
		links := new(mocks.ShareLinkStore)
		links.On("Resolve", mock.Anything, "missing00000").Return(nil, store.ErrShareLinkNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/designs/missing00000/preview", strings.NewReader(`{"html":"","css":""}`))
		req.Header.Set("Content-Type", "application/json")

		h := newTestAPI(t, links, new(mocks.DesignStore), new(mocks.PlatformClient))
		rec := serve(h, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMintShareLink(t *testing.T) {
	t.Run("mints and returns paths", func(t *testing.T) {
		links := new(mocks.ShareLinkStore)
		links.On("Mint", mock.Anything, model.TargetNGOProfile, "ngo-42").Return(&model.ShareLink{
			ShareID:    "abc123def456",
			TargetType: model.TargetNGOProfile,
			TargetID:   "ngo-42",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/share-links", strings.NewReader(`{"targetType":"ngo-profile","targetId":"ngo-42"}`))
		h := newTestAPI(t, links, new(mocks.DesignStore), new(mocks.PlatformClient))
		rec := serve(h, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ShareLinkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "abc123def456", resp.ShareID)
		assert.Equal(t, "/share/profile/abc123def456", resp.PublicPath)
		assert.Equal(t, "/editor/abc123def456", resp.EditorPath)
	})

	t.Run("campaign targets get the campaign route", func(t *testing.T) {
		links := new(mocks.ShareLinkStore)
		links.On("Mint", mock.Anything, model.TargetCampaign, "c-9").Return(&model.ShareLink{
			ShareID:    "camp00000000",
			TargetType: model.TargetCampaign,
			TargetID:   "c-9",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/share-links", strings.NewReader(`{"targetType":"campaign","targetId":"c-9"}`))
		h := newTestAPI(t, links, new(mocks.DesignStore), new(mocks.PlatformClient))
		rec := serve(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/share/campaign/camp00000000")
	})

	t.Run("unknown target type is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/share-links", strings.NewReader(`{"targetType":"charity","targetId":"x"}`))
		h := newTestAPI(t, new(mocks.ShareLinkStore), new(mocks.DesignStore), new(mocks.PlatformClient))
		rec := serve(h, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing target ID is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/share-links", strings.NewReader(`{"targetType":"ngo-profile","targetId":""}`))
		h := newTestAPI(t, new(mocks.ShareLinkStore), new(mocks.DesignStore), new(mocks.PlatformClient))
		rec := serve(h, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListPlaceholders(t *testing.T) {
	h := newTestAPI(t, new(mocks.ShareLinkStore), new(mocks.DesignStore), new(mocks.PlatformClient))
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/placeholders", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var docs []model.PlaceholderDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	assert.NotEmpty(t, docs)

	tokens := make([]string, 0, len(docs))
	for _, d := range docs {
		tokens = append(tokens, d.Token)
	}
	assert.Contains(t, tokens, "{{USER_NAME}}")
	assert.Contains(t, tokens, "{{CAMPAIGNS_HTML}}")
}
