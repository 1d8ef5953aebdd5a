package core

type Feature string

const (
	FeatureChat         Feature = "chat"
	FeatureFileAnalysis Feature = "file-analysis"
	FeatureSearch       Feature = "search"
)

// ContextKey derives the token that scopes a model backend's conversational
// memory for one user and one feature. Chat uses the bare user ID so chat
// memory spans the user's whole chat history; file analysis and search get
// suffixed keys so their prompts never leak into the chat conversation or
// into each other.
func ContextKey(userID string, feature Feature) string {
	switch feature {
	case FeatureFileAnalysis:
		return userID + "_file_analysis"
	case FeatureSearch:
		return userID + "_search"
	default:
		return userID
	}
}
