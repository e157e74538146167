package design

import (
	"testing"

	"github.com/givebridge/sharepage/internal/placeholder"
	"github.com/stretchr/testify/assert"
)

func TestValueSanitizer(t *testing.T) {
	s := NewValueSanitizer()

	t.Run("strips scripts from profile values", func(t *testing.T) {
		out := s.Sanitize(map[placeholder.Token]string{
			placeholder.TokenProfileDescription: `We help <script>document.cookie</script> villages`,
		})
		assert.NotContains(t, out[placeholder.TokenProfileDescription], "<script>")
		assert.Contains(t, out[placeholder.TokenProfileDescription], "villages")
	})

	t.Run("keeps harmless formatting", func(t *testing.T) {
		out := s.Sanitize(map[placeholder.Token]string{
			placeholder.TokenProfileDescription: `<b>Twenty years</b> of service`,
		})
		assert.Equal(t, `<b>Twenty years</b> of service`, out[placeholder.TokenProfileDescription])
	})

	t.Run("campaigns block passes through untouched", func(t *testing.T) {
		fragment := `<div style="width:280px;">card</div>`
		out := s.Sanitize(map[placeholder.Token]string{
			placeholder.TokenCampaignsHTML: fragment,
		})
		assert.Equal(t, fragment, out[placeholder.TokenCampaignsHTML])
	})

	t.Run("does not mutate the input map", func(t *testing.T) {
		in := map[placeholder.Token]string{
			placeholder.TokenProfileDescription: `<script>x</script>`,
		}
		s.Sanitize(in)
		assert.Equal(t, `<script>x</script>`, in[placeholder.TokenProfileDescription])
	})
}
