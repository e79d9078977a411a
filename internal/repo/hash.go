package repo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
)

// Checksum returns the xxh3-128 hex digest of content. The digest is
// deterministic and collision-resistant in practice; it is not a
// cryptographic integrity guarantee.
func Checksum(content string) string {
	return fmt.Sprintf("%x", xxh3.Hash128([]byte(content)).Bytes())
}

// commitID derives the commit id from the commit metadata and the full
// staged change set. Paths are hashed in lexicographic order so the id does
// not depend on staging insertion order.
func commitID(message, author, parent string, ts time.Time, changes map[string]string) string {
	paths := make([]string, 0, len(changes))
	for p := range changes {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	b.WriteString(message)
	b.WriteString(ts.UTC().Format(time.RFC3339Nano))
	if parent == "" {
		b.WriteString("root")
	} else {
		b.WriteString(parent)
	}
	b.WriteString(author)
	for _, p := range paths {
		b.WriteString(p)
		b.WriteString(changes[p])
	}
	return Checksum(b.String())
}
