// Package scan classifies single lines of AsciiDoc source against the three
// directive shapes the resolver cares about: include directives, comment
// fences, and block-form conditional directives.
//
// The matchers are independent and are all applied to every line; a line
// matching more than one shape is legal and every occurrence is reported.
// Nothing here is stateful; tracking which fences or conditionals are open
// is the resolver's job.
package scan

import "regexp"

var (
	// includeRe captures an optional leading line-comment marker and the
	// include target up to the macro's opening bracket. The attribute list
	// inside the brackets is deliberately not parsed.
	includeRe = regexp.MustCompile(`(^//)?.*?include::(.*?)\[`)

	// fenceRe matches a run of four or more slashes. The exact run is the
	// fence token: a fence only closes an open fence with the identical token.
	fenceRe = regexp.MustCompile(`/{4,}`)

	// conditionalRe captures block-form conditionals only: the directive must
	// be followed by an empty bracket pair. Inline conditionals, which carry
	// content inside the brackets, are not block delimiters and do not match.
	conditionalRe = regexp.MustCompile(`(^//)?.*?((?:ifdef|ifndef|ifeval|endif)::[^\[]*)\[\]`)
)

// Include is one include-directive occurrence on a line.
type Include struct {
	// Marker holds the leading same-line comment token ("//") when the line
	// starts commented out, "" otherwise. Only the first occurrence on a line
	// can carry it; the anchor cannot match mid-line.
	Marker string

	// Target is the include target exactly as written.
	Target string
}

// Conditional is one block-form conditional directive occurrence on a line.
type Conditional struct {
	Marker string

	// Directive is the full "directive::body" capture, e.g. "ifdef::product"
	// or "endif::".
	Directive string
}

// Includes returns every include directive on the line, in order.
func Includes(line string) []Include {
	matches := includeRe.FindAllStringSubmatch(line, -1)
	if matches == nil {
		return nil
	}
	incs := make([]Include, 0, len(matches))
	for _, m := range matches {
		incs = append(incs, Include{Marker: m[1], Target: m[2]})
	}
	return incs
}

// Fences returns every comment-fence token on the line, in order.
func Fences(line string) []string {
	return fenceRe.FindAllString(line, -1)
}

// Conditionals returns every block-form conditional directive on the line,
// in order.
func Conditionals(line string) []Conditional {
	matches := conditionalRe.FindAllStringSubmatch(line, -1)
	if matches == nil {
		return nil
	}
	conds := make([]Conditional, 0, len(matches))
	for _, m := range matches {
		conds = append(conds, Conditional{Marker: m[1], Directive: m[2]})
	}
	return conds
}
