// Package convert runs one conversion: read the input, pick a reader, build
// the forest, render it for the target format and deliver the result.
//
// The reader is chosen in this order: an explicit source format, the input
// file extension, then content detection. The result goes to the output
// file, to stdout on a dry run, or is compared with the existing output file
// in diff mode.
package convert
