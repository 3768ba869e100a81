// SPDX-License-Identifier: MPL-2.0

// Package rule compiles user-authored rename rules into programs that
// rewrite one filename at a time.
//
// A rule is a sequence of statements separated by ";" or newlines. Each
// statement is either a substitution (s/pattern/replacement/ with optional
// g and i flags and any punctuation as delimiter), a named transform call
// (lower, clean, url_encode, unique, renumber(3), by_date, prefix("x")),
// or a stop statement (stop, or stop /pattern/ to stop only when the
// current name matches). Compilation happens once per invocation, before
// any file is touched; a syntax error aborts the whole run.
//
// Applying a compiled program threads the working name through the
// statements in order. A stop statement short-circuits the remaining
// statements for that file without error. The rule language is
// deliberately data-only: there is no way to execute arbitrary code from
// a rule.
package rule
