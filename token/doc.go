// Package token provides the scanning primitives for the rpy archive format.
//
// [FindStatementEnd] and [FindUnescapedQuote] locate statement terminators and
// quote characters while honouring quoted regions. [Sanitize] removes
// characters the archive format does not permit, and [PosDoc] maps byte
// offsets to line and column numbers for error reporting.
//
// All functions take an explicit offset into the document and keep no state
// between calls, so independent documents may be scanned concurrently.
package token
