package docinv_test

import (
	"testing"

	"github.com/mrozanski/docinv"
	"github.com/stretchr/testify/assert"
)

func TestGuide_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid guide passes", func(t *testing.T) {
		t.Parallel()

		g := &docinv.Guide{
			Category: "Installing",
			Title:    "Installing the product",
			URL:      "https://docs.example.com/en/documentation/product/1.0/html-single/installing",
		}

		assert.NoError(t, g.Validate())
	})

	t.Run("missing title fails", func(t *testing.T) {
		t.Parallel()

		g := &docinv.Guide{URL: "https://docs.example.com/guide"}

		err := g.Validate()
		assert.Equal(t, docinv.EINVALID, docinv.ErrorCode(err))
	})

	t.Run("missing URL fails", func(t *testing.T) {
		t.Parallel()

		g := &docinv.Guide{Title: "Installing"}

		err := g.Validate()
		assert.Equal(t, docinv.EINVALID, docinv.ErrorCode(err))
	})
}

func TestFilterGuides(t *testing.T) {
	t.Parallel()

	guides := []docinv.Guide{
		{Category: "Install", Title: "Installing on bare metal", URL: "https://x/1"},
		{Category: "Install", Title: "Installing on cloud", URL: "https://x/2"},
		{Category: "Monitoring", Title: "Observability overview", URL: "https://x/3"},
	}

	t.Run("nil filter returns input unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, guides, docinv.FilterGuides(guides, nil))
	})

	t.Run("empty filter returns input unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, guides, docinv.FilterGuides(guides, &docinv.GuideFilter{}))
	})

	t.Run("category substring match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		got := docinv.FilterGuides(guides, &docinv.GuideFilter{Categories: []string{"MONITOR"}})

		assert.Len(t, got, 1)
		assert.Equal(t, "Observability overview", got[0].Title)
	})

	t.Run("multiple values within a field are ORed", func(t *testing.T) {
		t.Parallel()

		got := docinv.FilterGuides(guides, &docinv.GuideFilter{Titles: []string{"bare metal", "observability"}})

		assert.Len(t, got, 2)
	})

	t.Run("category and title are ANDed", func(t *testing.T) {
		t.Parallel()

		got := docinv.FilterGuides(guides, &docinv.GuideFilter{
			Categories: []string{"install"},
			Titles:     []string{"cloud"},
		})

		assert.Len(t, got, 1)
		assert.Equal(t, "Installing on cloud", got[0].Title)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		t.Parallel()

		got := docinv.FilterGuides(guides, &docinv.GuideFilter{Categories: []string{"release notes"}})

		assert.Empty(t, got)
	})
}

func TestHTMLSingleURL(t *testing.T) {
	t.Parallel()

	t.Run("rewrites html to html-single", func(t *testing.T) {
		t.Parallel()

		got := docinv.HTMLSingleURL("https://docs.example.com/en/documentation/product/1.0/html/installing/index")

		assert.Equal(t, "https://docs.example.com/en/documentation/product/1.0/html-single/installing/index", got)
	})

	t.Run("leaves other URLs untouched", func(t *testing.T) {
		t.Parallel()

		u := "https://docs.example.com/en/documentation/product/1.0/pdf/installing"

		assert.Equal(t, u, docinv.HTMLSingleURL(u))
	})
}

func TestProductSlug(t *testing.T) {
	t.Parallel()

	t.Run("uses segment after documentation", func(t *testing.T) {
		t.Parallel()

		got := docinv.ProductSlug("https://docs.example.com/en/documentation/openshift_ai/3.2")

		assert.Equal(t, "openshift_ai", got)
	})

	t.Run("falls back to last path segment", func(t *testing.T) {
		t.Parallel()

		got := docinv.ProductSlug("https://docs.example.com/products/widgets")

		assert.Equal(t, "widgets", got)
	})

	t.Run("falls back to docs for bare host", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "docs", docinv.ProductSlug("https://docs.example.com/"))
	})
}
