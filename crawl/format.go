package crawl

// TruncateTitle shortens a guide title for progress display, keeping the
// beginning which is more informative.
func TruncateTitle(title string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(title) <= maxLen {
		return title
	}
	if maxLen < 4 {
		// Too short for a "..." suffix, just cut
		return title[:maxLen]
	}
	return title[:maxLen-3] + "..."
}
