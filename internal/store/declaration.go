package store

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"hashgen/internal/domain"
)

// entryRE matches one quoted hash entry of a declaration.
var entryRE = regexp.MustCompile(`^\s*"([0-9a-f]{64})",?\s*$`)

// Declaration renders hashes, sorted ascending, as a list assignment:
//
//	<indent>name = [
//	<indent>    "<hash>",
//	<indent>]
//
// Every line, the closing bracket included, ends with a newline.
func Declaration(name string, hashes domain.HashList, indent string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s = [\n", indent, name)
	for _, h := range hashes.Sorted() {
		fmt.Fprintf(&b, "%s    %q,\n", indent, string(h))
	}
	fmt.Fprintf(&b, "%s]\n", indent)
	return b.String()
}

// Header returns the comment block written above the declaration. digest is
// the display name of the hash, e.g. "SHA256".
func Header(digest, label string) string {
	return "# " + digest + " hashes of student usernames\n" +
		"# Generated for " + label + "\n" +
		"# DO NOT commit the raw email list!\n"
}

// parseDeclaration collects every quoted hash entry in b, in file order.
// Comments, blank lines and the brackets are ignored.
func parseDeclaration(b []byte) (domain.HashList, error) {
	var out domain.HashList
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		m := entryRE.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		out = append(out, domain.Hash(m[1]))
	}
	return out, sc.Err()
}
