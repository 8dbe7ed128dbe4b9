// Package format names the data formats procon understands and classifies
// the errors raised while reading or writing them.
//
// [Format] values come from flags ([Parse], or via pflag since *Format
// implements pflag.Value) or from file names ([FromExtension]). Every failure
// in the readers and writers is reported as an [*Error] carrying a [Kind], so
// callers can map failures to exit codes with [KindOf].
package format
