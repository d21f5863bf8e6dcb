package docinv

import "strings"

// Columns are the fixed CSV header columns of a content inventory.
// Heading levels map to columns by index: h2 lands in Chapters (2),
// h3 in Sections (3), and so on through h6 in Details (6). Notes is
// left for the auditor; URL is reserved.
var Columns = []string{
	"Category",
	"Titles",
	"Chapters",
	"Sections",
	"Sub-sections",
	"Sub-sub-sections",
	"Details",
	"Notes",
	"URL",
}

// Entry pairs a guide with its extracted headings.
type Entry struct {
	Guide    Guide
	Headings []Heading
}

// Hyperlink wraps text in a spreadsheet HYPERLINK formula so the cell is
// clickable in Google Sheets and Excel. Double quotes are percent-encoded
// in the URL and doubled in the text per formula quoting rules.
func Hyperlink(url, text string) string {
	safeURL := strings.ReplaceAll(url, `"`, "%22")
	safeText := strings.ReplaceAll(text, `"`, `""`)
	return `=HYPERLINK("` + safeURL + `","` + safeText + `")`
}

// BuildRows shapes entries into CSV rows (header excluded).
//
// Each guide contributes a title row, one row per heading at level 2-6,
// and a blank separator row. The category cell is filled only on the
// first guide of each consecutive category group. Page-title (h1)
// headings are dropped since the landing page already names the guide.
func BuildRows(entries []Entry) [][]string {
	var rows [][]string
	prevCategory := ""

	for _, e := range entries {
		row := blankRow()
		if e.Guide.Category != prevCategory {
			row[0] = e.Guide.Category
		}
		prevCategory = e.Guide.Category
		row[1] = Hyperlink(e.Guide.URL, e.Guide.Title)
		rows = append(rows, row)

		for _, h := range e.Headings {
			// Levels must stay clear of the Notes and URL columns.
			if h.Level < 2 || h.Level >= len(Columns)-2 {
				continue
			}
			row := blankRow()
			row[h.Level] = Hyperlink(h.URL, h.Text)
			rows = append(rows, row)
		}

		rows = append(rows, blankRow())
	}

	return rows
}

func blankRow() []string {
	return make([]string, len(Columns))
}
