package backend

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/chefolio/chefolio/backend/util"
)

// NormalizeDataSource applies common normalization to a data source:
// whitespace is trimmed, file:// URLs become plain paths and a leading
// "~/" expands to the user's home directory. http(s) URLs are returned unchanged.
func NormalizeDataSource(src string) string {
	src = strings.TrimSpace(src)
	if src == "" || util.IsRemote(src) {
		return src
	}
	if strings.HasPrefix(strings.ToLower(src), "file://") {
		if u, err := url.Parse(src); err == nil && u.Path != "" {
			src = filepath.FromSlash(u.Path)
		}
	}
	if strings.HasPrefix(src, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			src = filepath.Join(home, src[2:])
		}
	}
	return src
}
