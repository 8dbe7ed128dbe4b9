// Package output renders a [tree.Forest] in one of the target formats.
//
// Four formats are supported:
//   - properties - one path=value line per leaf, in tree order
//   - json       - nested objects, keys in tree order
//   - yaml       - block mappings, keys in tree order
//   - toml       - tables; key order is decided by the encoder
//
// Use [GetWriter] to obtain a [Writer] for a format, or [Render] to get the
// document as a string. [WriteDiff] compares a rendered document against the
// current contents of an output file.
package output
