// Package linter walks the AST applying migration-hazard rules with per-file
// and per-line suppression.
package linter

import (
	"fmt"
	"sort"

	"github.com/squawkhq/squawk/syntax"
	"github.com/squawkhq/squawk/syntax/ast"
)

// Rule is a stable, kebab-case rule identifier. The set is closed: new rules
// require an entry in allRules.
type Rule string

const (
	AddingFieldWithDefault                 Rule = "adding-field-with-default"
	AddingForeignKeyConstraint             Rule = "adding-foreign-key-constraint"
	AddingPrimaryKeyConstraint             Rule = "adding-primary-key-constraint"
	AddingRequiredField                    Rule = "adding-required-field"
	BanAlterDomainWithAddConstraint        Rule = "ban-alter-domain-with-add-constraint"
	BanCharField                           Rule = "ban-char-field"
	BanConcurrentIndexCreationInTransaction Rule = "ban-concurrent-index-creation-in-transaction"
	BanCreateDomainWithConstraint          Rule = "ban-create-domain-with-constraint"
	BanDropColumn                          Rule = "ban-drop-column"
	BanDropDatabase                        Rule = "ban-drop-database"
	BanDropNotNull                         Rule = "ban-drop-not-null"
	BanDropTable                           Rule = "ban-drop-table"
	BanTruncateCascade                     Rule = "ban-truncate-cascade"
	ChangingColumnType                     Rule = "changing-column-type"
	ConstraintMissingNotValid              Rule = "constraint-missing-not-valid"
	PreferBigInt                           Rule = "prefer-big-int"
	PreferBigintOverInt                    Rule = "prefer-bigint-over-int"
	PreferBigintOverSmallint               Rule = "prefer-bigint-over-smallint"
	PreferTextField                        Rule = "prefer-text-field"
	PreferTimestampTz                      Rule = "prefer-timestamptz"
	RenamingColumn                         Rule = "renaming-column"
	RenamingTable                          Rule = "renaming-table"
	RequireConcurrentIndexCreation         Rule = "require-concurrent-index-creation"
	RequireConcurrentIndexDeletion         Rule = "require-concurrent-index-deletion"
	TransactionNesting                     Rule = "transaction-nesting"
	// UnusedIgnore reports unknown rule names inside squawk-ignore comments.
	UnusedIgnore Rule = "unused-ignore"
)

type ruleFunc func(ctx *Linter, file ast.SourceFile)

type ruleEntry struct {
	name Rule
	fn   ruleFunc
}

// allRules lists every rule in its fixed execution order.
var allRules = []ruleEntry{
	{AddingFieldWithDefault, addingFieldWithDefault},
	{AddingForeignKeyConstraint, addingForeignKeyConstraint},
	{AddingPrimaryKeyConstraint, addingPrimaryKeyConstraint},
	{AddingRequiredField, addingRequiredField},
	{BanAlterDomainWithAddConstraint, banAlterDomainWithAddConstraint},
	{BanCharField, banCharField},
	{BanConcurrentIndexCreationInTransaction, banConcurrentIndexCreationInTransaction},
	{BanCreateDomainWithConstraint, banCreateDomainWithConstraint},
	{BanDropColumn, banDropColumn},
	{BanDropDatabase, banDropDatabase},
	{BanDropNotNull, banDropNotNull},
	{BanDropTable, banDropTable},
	{BanTruncateCascade, banTruncateCascade},
	{ChangingColumnType, changingColumnType},
	{ConstraintMissingNotValid, constraintMissingNotValid},
	{PreferBigInt, preferBigInt},
	{PreferBigintOverInt, preferBigintOverInt},
	{PreferBigintOverSmallint, preferBigintOverSmallint},
	{PreferTextField, preferTextField},
	{PreferTimestampTz, preferTimestampTz},
	{RenamingColumn, renamingColumn},
	{RenamingTable, renamingTable},
	{RequireConcurrentIndexCreation, requireConcurrentIndexCreation},
	{RequireConcurrentIndexDeletion, requireConcurrentIndexDeletion},
	{TransactionNesting, transactionNesting},
}

// RuleFromName resolves a kebab-case identifier to a Rule.
func RuleFromName(s string) (Rule, error) {
	for _, e := range allRules {
		if string(e.name) == s {
			return e.name, nil
		}
	}
	return "", fmt.Errorf("invalid rule name %s", s)
}

// Rules returns every rule identifier, in execution order.
func Rules() []Rule {
	out := make([]Rule, len(allRules))
	for i, e := range allRules {
		out[i] = e.name
	}
	return out
}

// Settings carries the knobs that change rule behavior.
type Settings struct {
	// AssumeInTransaction lints the file as if wrapped in BEGIN/COMMIT, for
	// migration tools that manage the transaction themselves.
	AssumeInTransaction bool
	// PgVersion, when known, lets version-aware rules relax; absent means
	// the most restrictive interpretation.
	PgVersion *Version
}

// Linter runs enabled rules over a parsed file, collecting violations and
// filtering them through the suppression index.
type Linter struct {
	Settings Settings

	enabled    map[Rule]bool
	ignores    []Ignore
	violations []Violation
}

// New returns a linter with the given rules enabled.
func New(rules ...Rule) *Linter {
	enabled := make(map[Rule]bool, len(rules))
	for _, r := range rules {
		enabled[r] = true
	}
	return &Linter{enabled: enabled}
}

// WithAllRules returns a linter with every rule enabled.
func WithAllRules() *Linter {
	l := New()
	for _, e := range allRules {
		l.enabled[e.name] = true
	}
	return l
}

// Disable removes rules from the enabled set.
func (l *Linter) Disable(rules ...Rule) {
	for _, r := range rules {
		delete(l.enabled, r)
	}
}

// Report records a violation; suppression happens later, in Lint.
func (l *Linter) Report(v Violation) {
	l.violations = append(l.violations, v)
}

func (l *Linter) addIgnore(ig Ignore) {
	l.ignores = append(l.ignores, ig)
}

// Lint runs every enabled rule once over the parse and returns the
// unsuppressed violations sorted by (range start, code).
func (l *Linter) Lint(parse syntax.Parse, text string) []Violation {
	l.ignores = nil
	l.violations = nil

	root := parse.SyntaxNode()
	findIgnores(l, root)
	file := ast.File(root)

	for _, e := range allRules {
		if l.enabled[e.name] {
			e.fn(l, file)
		}
	}

	index := newIgnoreIndex(text, l.ignores)
	out := make([]Violation, 0, len(l.violations))
	for _, v := range l.violations {
		if index.contains(v.Range, v.Code) {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Range.Start != out[j].Range.Start {
			return out[i].Range.Start < out[j].Range.Start
		}
		return out[i].Code < out[j].Code
	})
	return out
}
