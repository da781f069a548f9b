package registry

import "github.com/plucky/plucky/internal/pattern"

var (
	// word: a run of word characters not flanked by further word characters.
	catWord = pattern.Guard(pattern.Repeat("word", wordChar, 1, -1), pattern.WordBoundary)

	// variable-name: leading letter or underscore, trailing alnum/underscore.
	catVariableName = pattern.Guard(pattern.Seq("variable-name",
		pattern.Class("", "A-Za-z_"),
		pattern.Repeat("", wordChar, 0, -1),
	), pattern.WordBoundary)

	// function-name shares the identifier grammar.
	catFunctionName = pattern.Named("function-name", catVariableName)
)
