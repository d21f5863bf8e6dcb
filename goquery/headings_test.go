package goquery_test

import (
	"testing"

	"github.com/mrozanski/docinv"
	"github.com/mrozanski/docinv/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://docs.example.com/en/documentation/product/1.0/html-single/guide/index"

func TestHeadingExtractor_ExtractHeadings(t *testing.T) {
	t.Parallel()

	t.Run("extracts headings in document order with levels", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
<h1 id="guide-title">Guide title</h1>
<h2 id="ch1">Chapter 1. Installing</h2>
<h3 id="prereq">Prerequisites</h3>
<h2 id="ch2">Chapter 2. Upgrading</h2>
</article></body></html>`

		extractor := goquery.NewHeadingExtractor()
		headings, err := extractor.ExtractHeadings(html, pageURL)

		require.NoError(t, err)
		require.Len(t, headings, 4)

		assert.Equal(t, docinv.Heading{
			Level:  1,
			Text:   "Guide title",
			Anchor: "guide-title",
			URL:    pageURL + "#guide-title",
		}, headings[0])
		assert.Equal(t, 2, headings[1].Level)
		assert.Equal(t, 3, headings[2].Level)
		assert.Equal(t, "Chapter 2. Upgrading", headings[3].Text)
	})

	t.Run("prefers aria-live article over other content roots", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main><h2 id="nav-h">Site navigation</h2></main>
<article aria-live="polite"><h2 id="real">Real chapter</h2></article>
</body></html>`

		extractor := goquery.NewHeadingExtractor()
		headings, err := extractor.ExtractHeadings(html, pageURL)

		require.NoError(t, err)
		require.Len(t, headings, 1)
		assert.Equal(t, "Real chapter", headings[0].Text)
	})

	t.Run("falls back to whole document without content root", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><h2 id="ch">Chapter</h2></div></body></html>`

		extractor := goquery.NewHeadingExtractor()
		headings, err := extractor.ExtractHeadings(html, pageURL)

		require.NoError(t, err)
		require.Len(t, headings, 1)
	})

	t.Run("resolves anchor from parent element id", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
<section id="installing-operator"><h2>Installing the operator</h2></section>
</article></body></html>`

		extractor := goquery.NewHeadingExtractor()
		headings, err := extractor.ExtractHeadings(html, pageURL)

		require.NoError(t, err)
		require.Len(t, headings, 1)
		assert.Equal(t, "installing-operator", headings[0].Anchor)
		assert.Equal(t, pageURL+"#installing-operator", headings[0].URL)
	})

	t.Run("resolves anchor from inner a id or name", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
<h2><a id="by-id"></a>With id</h2>
<h3><a name="by-name"></a>With name</h3>
</article></body></html>`

		extractor := goquery.NewHeadingExtractor()
		headings, err := extractor.ExtractHeadings(html, pageURL)

		require.NoError(t, err)
		require.Len(t, headings, 2)
		assert.Equal(t, "by-id", headings[0].Anchor)
		assert.Equal(t, "by-name", headings[1].Anchor)
	})

	t.Run("heading without anchor keeps bare page URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><h2>No anchor here</h2></article></body></html>`

		extractor := goquery.NewHeadingExtractor()
		headings, err := extractor.ExtractHeadings(html, pageURL)

		require.NoError(t, err)
		require.Len(t, headings, 1)
		assert.Empty(t, headings[0].Anchor)
		assert.Equal(t, pageURL, headings[0].URL)
	})

	t.Run("strips boilerplate and skips legal headings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
<h2 id="ch1">Chapter 1Copy linkLink copied to clipboard!</h2>
<h2 id="legal">Legal Notice</h2>
<h2 id="empty">   </h2>
</article></body></html>`

		extractor := goquery.NewHeadingExtractor()
		headings, err := extractor.ExtractHeadings(html, pageURL)

		require.NoError(t, err)
		require.Len(t, headings, 1)
		assert.Equal(t, "Chapter 1", headings[0].Text)
	})

	t.Run("returns empty list for page without headings", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewHeadingExtractor()
		headings, err := extractor.ExtractHeadings("<html><body><p>text</p></body></html>", pageURL)

		require.NoError(t, err)
		assert.Empty(t, headings)
	})
}
