package transcode

const (
	MaxNameLength        = 256
	MaxValueLength       = 1024
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096

	ellipsis = "..."
)

// Truncate cuts s to at most max characters, ending with "..." when it had to cut.
// Applying it again to its own output is a no-op.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string(r[:max])
	}
	return string(r[:max-len(ellipsis)]) + ellipsis
}
