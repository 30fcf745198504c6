package selgen

// Issue represents a single recipe violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "selvet"
	Text        string   `json:"Text"`        // `duplicate id "other": ...`
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // recipe lines carrying the issue
	Pos         IssuePos `json:"Pos"`         // file location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "selectors/nav.yaml"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 9 (1-based, start of the offending key)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter is the name vet issues are attributed to.
const Linter = "selvet"

// Issue message formats, one per violation category
const (
	IssueDuplicatePart   = "duplicate %s %q: element, id and pseudo-element may appear at most once per selector"
	IssueOutOfOrderPart  = "%s %q breaks part order: element, id, class, attribute, pseudo-class, pseudo-element"
	IssueUnknownKind     = "unknown part kind %q (want element|id|class|attr|pseudo-class|pseudo-element)"
	IssueMissingName     = "selector recipe has no name"
	IssueDuplicateName   = "duplicate selector name %q (first defined in %s)"
	IssueUnknownRef      = "combine references unknown selector %q"
	IssueCombineCycle    = "combine cycle through selector %q"
	IssuePartsAndCombine = "selector %q declares both parts and combine; pick one"
	IssueEmptyRecipe     = "selector %q declares neither parts nor combine"
	IssueEmptyParts      = "selector %q has an empty parts list and renders as an empty selector"
)
