package design

import (
	"strings"
	"testing"

	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/placeholder"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Run("produces a complete document with inlined CSS", func(t *testing.T) {
		d := model.TemplateDesign{HTML: "<h1>Hello</h1>", CSS: "h1 { color: red; }"}

		out := Merge(d, nil)
		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Contains(t, out, "<style>\nh1 { color: red; }\n</style>")
		assert.Contains(t, out, "<body>\n<h1>Hello</h1>\n</body>")
		assert.True(t, strings.HasSuffix(out, "</html>"))
	})

	t.Run("replaces every occurrence of each token", func(t *testing.T) {
		d := model.TemplateDesign{HTML: "{{USER_NAME}} and again {{USER_NAME}}"}
		out := Merge(d, map[placeholder.Token]string{placeholder.TokenUserName: "Asha"})
		assert.NotContains(t, out, "{{USER_NAME}}")
		assert.Equal(t, 2, strings.Count(out, "Asha"))
	})

	t.Run("unknown tokens pass through verbatim", func(t *testing.T) {
		d := model.TemplateDesign{HTML: "<p>{{NOT_A_REAL_TOKEN}}</p>"}
		out := Merge(d, map[placeholder.Token]string{placeholder.TokenUserName: "Asha"})
		assert.Contains(t, out, "{{NOT_A_REAL_TOKEN}}")
	})

	t.Run("values are not escaped or regex-interpreted", func(t *testing.T) {
		d := model.TemplateDesign{HTML: `<div>{{PROFILE_DESCRIPTION}}</div>`}
		out := Merge(d, map[placeholder.Token]string{
			placeholder.TokenProfileDescription: `<b>Bold & daring</b> worth $1.00 \ more`,
		})
		assert.Contains(t, out, `<b>Bold & daring</b> worth $1.00 \ more`)
	})

	t.Run("missing website yields empty href", func(t *testing.T) {
		values := placeholder.Resolve(model.ProfileUser{Name: "Asha"}, nil)
		d := model.TemplateDesign{HTML: `<a href="{{PROFILE_WEBSITE}}">site</a>`}

		out := Merge(d, values)
		assert.Contains(t, out, `href=""`)
		assert.NotContains(t, out, "undefined")
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		user := model.ProfileUser{
			Name: "Asha",
			Profile: &model.Profile{
				Kind: model.KindNGO,
				NGO:  &model.NGODetails{Name: "Hope Trust", Is80GCertified: true},
			},
		}
		campaigns := []model.CampaignSummary{
			{Title: "Clean Water", Raised: decimal.NewFromInt(5000), Goal: decimal.NewFromInt(10000)},
		}
		d := DefaultDesign()

		first := Merge(d, placeholder.Resolve(user, campaigns))
		second := Merge(d, placeholder.Resolve(user, campaigns))
		require.Equal(t, first, second)
	})

	t.Run("no catalog token survives in default design output", func(t *testing.T) {
		values := placeholder.Resolve(model.ProfileUser{}, nil)
		out := Merge(DefaultDesign(), values)
		for _, token := range placeholder.Tokens() {
			assert.NotContains(t, out, string(token))
		}
	})

	t.Run("certification flags land next to their labels", func(t *testing.T) {
		user := model.ProfileUser{
			Profile: &model.Profile{
				Kind: model.KindNGO,
				NGO:  &model.NGODetails{Is80GCertified: true, Is12ACertified: false},
			},
		}
		d := model.TemplateDesign{HTML: "80G: {{PROFILE_80G}} | 12A: {{PROFILE_12A}}"}

		out := Merge(d, placeholder.Resolve(user, nil))
		assert.Contains(t, out, "80G: Yes")
		assert.Contains(t, out, "12A: No")
	})
}

func TestDefaultDesign(t *testing.T) {
	t.Run("returns a fresh value per call", func(t *testing.T) {
		a := DefaultDesign()
		b := DefaultDesign()

		a.AdditionalData["dirty"] = true
		assert.Empty(t, b.AdditionalData)

		a.HTML = "mutated"
		assert.NotEqual(t, a.HTML, b.HTML)
	})

	t.Run("uses only catalog tokens", func(t *testing.T) {
		d := DefaultDesign()
		for _, token := range []placeholder.Token{
			placeholder.TokenUserName,
			placeholder.TokenUserAvatar,
			placeholder.TokenProfileWebsite,
			placeholder.TokenCampaignsHTML,
		} {
			assert.Contains(t, d.HTML, string(token))
		}
		assert.NotEmpty(t, d.CSS)
	})
}
