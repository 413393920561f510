// Package utils holds loose conversions for decoded JSON values.
//
// Submitted ranking rows mix numbers and numeric strings depending on the
// scoring system that produced them, so these helpers accept both and never fail.
package utils
