// Package extractors groups the extraction stages of the note pipeline.
//
// Each stage lives in its own subpackage and is a pure transform over the
// segmented conversation: given the same input it always produces the same
// output, holds no state between calls, and never mutates its input. The
// parser service fans the independent stages out and joins their results
// into a StructuredNote.
package extractors
