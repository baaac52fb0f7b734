package validation

import "regexp"

// Validation rule patterns and limits
var (
	// EmailPattern is the accepted email format
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8

	// Name length bounds for users and programs
	NameMinLength = 2
	NameMaxLength = 100

	// Rating bounds for feedback entries
	RatingMin = 1
	RatingMax = 5

	// MarkMin and MarkMax bound a yearly mark (0-20 grading scale)
	MarkMin = 0.0
	MarkMax = 20.0

	// TranscriptMaxBytes is the upload size limit for transcript PDFs
	TranscriptMaxBytes = int64(10 * 1024 * 1024)

	// TranscriptContentType is the only accepted transcript MIME type
	TranscriptContentType = "application/pdf"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidRating reports whether a feedback rating is within bounds
func ValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}
