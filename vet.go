package selgen

import (
	"errors"
	"fmt"
)

// partAppends maps recipe part kinds to Builder appends.
var partAppends = map[string]func(*Builder, string) *Builder{
	"element":        (*Builder).Element,
	"id":             (*Builder).ID,
	"class":          (*Builder).Class,
	"attr":           (*Builder).Attr,
	"pseudo-class":   (*Builder).PseudoClass,
	"pseudo-element": (*Builder).PseudoElement,
}

// Vet validates selector recipes without writing anything. Recipe violations
// surface as positioned Issues; only I/O level problems are returned as an
// error.
func Vet(config Config) (*VetResult, error) {
	files, stats, err := ExpandRecipeGlobs(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("expand recipe globs: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Found %d recipe files\n", len(files))
	}

	set, warnings := loadRecipeFiles(files, config)

	result := validateRecipes(set)
	result.FilesScanned = stats.FilesScanned
	result.Warnings = append(result.Warnings, warnings...)

	if config.Verbose {
		fmt.Printf("Checked %d recipes, built %d selectors\n",
			result.RecipesChecked, result.SelectorsBuilt)
	}

	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	countSeverities(result)
	return result, nil
}

// validateRecipes replays every recipe through the Builder and resolves
// combine references across the whole set.
func validateRecipes(set *recipeSet) *VetResult {
	result := &VetResult{RecipesChecked: len(set.recipes)}

	r := &resolver{
		set:      set,
		byName:   make(map[string]*Recipe, len(set.recipes)),
		built:    make(map[string]*Builder),
		visiting: make(map[string]bool),
	}

	// first pass: register names so combines can reference recipes declared
	// later or in other files
	var order []string
	for i := range set.recipes {
		rec := &set.recipes[i]
		if rec.Name == "" {
			r.addIssue(rec.SourceFile, rec.Line, rec.Column, SeverityError, IssueMissingName)
			continue
		}
		if first, dup := r.byName[rec.Name]; dup {
			r.addIssue(rec.SourceFile, rec.Line, rec.Column, SeverityError,
				fmt.Sprintf(IssueDuplicateName, rec.Name, first.SourceFile))
			continue
		}
		r.byName[rec.Name] = rec
		order = append(order, rec.Name)
	}

	// second pass: build every registered recipe in declaration order
	for _, name := range order {
		b, ok := r.resolve(name, r.byName[name])
		if !ok {
			continue
		}
		rec := r.byName[name]
		result.Selectors = append(result.Selectors, SelectorConstant{
			Name:       rec.Name,
			Selector:   b.String(),
			SourceFile: rec.SourceFile,
		})
	}

	result.SelectorsBuilt = len(result.Selectors)
	result.Issues = r.issues
	return result
}

// resolver builds recipes by name, following combine references and
// detecting reference cycles. Results are memoized so shared sub-selectors
// are built once and diagnosed once.
type resolver struct {
	set      *recipeSet
	byName   map[string]*Recipe
	built    map[string]*Builder // nil entry = failed, issue already recorded
	visiting map[string]bool
	issues   []Issue
}

// resolve returns the Builder for a named recipe, or ok=false when the
// recipe (or anything it references) is invalid. at is the recipe whose
// combine referenced name, used to position unknown-reference issues.
func (r *resolver) resolve(name string, at *Recipe) (*Builder, bool) {
	rec, known := r.byName[name]
	if !known {
		r.addIssue(at.SourceFile, at.Line, at.Column, SeverityError,
			fmt.Sprintf(IssueUnknownRef, name))
		return nil, false
	}
	if b, done := r.built[name]; done {
		return b, b != nil
	}
	if r.visiting[name] {
		r.addIssue(rec.SourceFile, rec.Line, rec.Column, SeverityError,
			fmt.Sprintf(IssueCombineCycle, name))
		r.built[name] = nil
		return nil, false
	}
	r.visiting[name] = true
	defer delete(r.visiting, name)

	var b *Builder
	switch {
	case rec.Combine != nil && len(rec.Parts) > 0:
		r.addIssue(rec.SourceFile, rec.Line, rec.Column, SeverityError,
			fmt.Sprintf(IssuePartsAndCombine, rec.Name))

	case rec.Combine != nil:
		left, lok := r.resolve(rec.Combine.Left, rec)
		right, rok := r.resolve(rec.Combine.Right, rec)
		if lok && rok {
			b = Combine(left, rec.Combine.Combinator, right)
		}

	case rec.Parts != nil:
		if len(rec.Parts) == 0 {
			r.addIssue(rec.SourceFile, rec.Line, rec.Column, SeverityWarning,
				fmt.Sprintf(IssueEmptyParts, rec.Name))
		}
		b = r.replayParts(rec)

	default:
		r.addIssue(rec.SourceFile, rec.Line, rec.Column, SeverityError,
			fmt.Sprintf(IssueEmptyRecipe, rec.Name))
	}

	r.built[name] = b
	return b, b != nil
}

// replayParts feeds the recipe's parts through a fresh Builder in author
// order. The first violation becomes an issue positioned at the offending
// part, matching where the author has to edit.
func (r *resolver) replayParts(rec *Recipe) *Builder {
	b := new(Builder)
	for i := range rec.Parts {
		part := &rec.Parts[i]

		appendPart, ok := partAppends[part.Kind]
		if !ok {
			r.addIssue(rec.SourceFile, part.Line, part.Column, SeverityError,
				fmt.Sprintf(IssueUnknownKind, part.Kind))
			return nil
		}

		appendPart(b, part.Value)
		if err := b.Err(); err != nil {
			r.addIssue(rec.SourceFile, part.Line, part.Column, SeverityError,
				issueTextFor(err, part))
			return nil
		}
	}
	return b
}

// issueTextFor translates a Builder violation into its issue message.
func issueTextFor(err error, part *Part) string {
	switch {
	case errors.Is(err, ErrDuplicateFragment):
		return fmt.Sprintf(IssueDuplicatePart, part.Kind, part.Value)
	case errors.Is(err, ErrOutOfOrder):
		return fmt.Sprintf(IssueOutOfOrderPart, part.Kind, part.Value)
	default:
		return err.Error()
	}
}

func (r *resolver) addIssue(file string, line, column int, severity, text string) {
	issue := Issue{
		FromLinter: Linter,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Filename: file,
			Line:     line,
			Column:   column,
		},
	}
	if src := r.set.sourceLine(file, line); src != "" {
		issue.SourceLines = []string{src}
	}
	r.issues = append(r.issues, issue)
}

// countSeverities fills the error/warning counters from the issue list.
func countSeverities(result *VetResult) {
	result.ErrorCount = 0
	result.WarningCount = 0
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
}

// limitIssues applies MaxIssues and MaxSameIssues and reports how many
// issues were dropped.
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
