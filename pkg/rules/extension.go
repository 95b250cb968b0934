package rules

import "strings"

// SplitExtension decomposes a name into the stem subject to matching and the
// preserved extension suffix (including its dot).
//
// The split happens at the last dot only, and only when that dot separates a
// non-empty base from a non-empty trailing segment:
//
//	SplitExtension("archive.tar.gz") // "archive.tar", ".gz"
//	SplitExtension(".bashrc")        // ".bashrc", ""   (hidden-file marker)
//	SplitExtension("nodot")          // "nodot", ""
//	SplitExtension("trailing.")      // "trailing.", ""
//	SplitExtension("")               // "", ""
func SplitExtension(name string) (stem, suffix string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return name, ""
	}
	return name[:dot], name[dot:]
}
