// Package textio ingests plain-text documents for comparison.
//
// Reads validate that the path names a regular file, then decode the bytes
// through a configured encoding chain: UTF-8 when the bytes already validate,
// otherwise each fallback decoder in order. The Chinese codecs are
// lossy-tolerant (invalid sequences become U+FFFD) so legacy GBK material
// never aborts a run.
package textio
