// Package extractors dispatches raw byte streams to content-type
// specific extractors. Each extractor lives in its own subpackage and
// implements the driven.Extractor port; the Registry selects the first
// registered extractor whose Supports predicate matches.
package extractors
