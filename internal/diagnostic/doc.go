// Package diagnostic collects the problems found while validating and
// synthesizing a consttable declaration.
//
// A single pass reports as many problems as it can: diagnostics accumulate
// in declaration order and are returned together with whatever artifact
// could still be built, instead of stopping at the first error.
package diagnostic
