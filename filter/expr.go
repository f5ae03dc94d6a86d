package filter

import (
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/reloop/tmdb"
)

// releaseDateLayout is the TMDB release date format
const releaseDateLayout = "2006-01-02"

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[string, CompiledFilter](size)
		}
	}
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[string, CompiledFilter]
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: make(map[string]any, 16),
	}
	addHelperFunctions(c.helperFuncs)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Compile against a sample environment so field types are checked
	env := createEnvironment(tmdb.Movie{}, c.helperFuncs)
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Evaluate evaluates the filter against a movie. A runtime error counts as no match.
func (f *exprFilter) Evaluate(movie tmdb.Movie) bool {
	result, err := expr.Run(f.program, createEnvironment(movie, f.helpers))
	if err != nil {
		return false
	}
	matched, ok := result.(bool)
	return ok && matched
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the movie-independent helpers
func addHelperFunctions(env map[string]any) {
	// case-insensitive variants of the contains/startsWith/endsWith operators
	env["hasText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["daysAgo"] = func(days int) string {
		return time.Now().AddDate(0, 0, -days).Format(releaseDateLayout)
	}
	env["today"] = func() string {
		return time.Now().Format(releaseDateLayout)
	}
}

// createEnvironment builds the evaluation environment for one movie.
// extra holds the compiler's helper functions.
func createEnvironment(movie tmdb.Movie, extra map[string]any) map[string]any {
	env := make(map[string]any, 24)
	addHelperFunctions(env)
	maps.Copy(env, extra)

	released, hasRelease := parseReleaseDate(movie.ReleaseDate)

	env["ID"] = movie.ID
	env["Title"] = movie.Title
	env["Overview"] = movie.Overview
	env["ReleaseDate"] = movie.ReleaseDate
	env["Year"] = releaseYear(movie.ReleaseDate)
	env["Rating"] = movie.VoteAverage
	env["PosterPath"] = movie.Poster()
	env["BackdropPath"] = movie.Backdrop()

	env["hasPoster"] = func() bool { return movie.PosterPath != nil && *movie.PosterPath != "" }
	env["hasBackdrop"] = func() bool { return movie.BackdropPath != nil && *movie.BackdropPath != "" }
	env["releasedAfter"] = func(date string) bool {
		bound, ok := parseReleaseDate(date)
		return hasRelease && ok && released.After(bound)
	}
	env["releasedBefore"] = func(date string) bool {
		bound, ok := parseReleaseDate(date)
		return hasRelease && ok && released.Before(bound)
	}

	return env
}

func parseReleaseDate(date string) (time.Time, bool) {
	t, err := time.Parse(releaseDateLayout, date)
	return t, err == nil
}

func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
