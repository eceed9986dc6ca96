package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/chefolio/chefolio/backend/util"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrDataUnavailable wraps every failure to read, parse or validate a portfolio document.
var ErrDataUnavailable = errors.New("portfolio data unavailable")

// Loader reads portfolio documents from a local path or an http(s) URL.
type Loader struct {
	// HTTPClient is used for remote sources. If nil, a client
	// that does not retry is created on first use.
	HTTPClient *retryablehttp.Client
}

// Load reads, validates and normalizes the document at source.
// Cuisines come back sorted by their display order, dish tags are
// de-duplicated and image references are resolved against source.
func (l *Loader) Load(ctx context.Context, source string) (*Portfolio, error) {
	b, err := l.read(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrDataUnavailable, source, err)
	}
	p, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataUnavailable, source, err)
	}
	p.Source = source
	p.normalize()
	return p, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !util.IsRemote(source) {
		return os.ReadFile(source)
	}
	if l.HTTPClient == nil {
		l.HTTPClient = util.NewHTTPClient(0, 30*time.Second)
	}
	return util.FetchURL(ctx, l.HTTPClient, source)
}

// Decode parses and validates a portfolio document without normalizing it.
func Decode(r io.Reader) (*Portfolio, error) {
	p := &Portfolio{}
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	if err := Validate(p); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return p, nil
}

func (p *Portfolio) normalize() {
	sort.SliceStable(p.Cuisines, func(i, j int) bool {
		return p.Cuisines[i].Order < p.Cuisines[j].Order
	})
	p.Chef.ProfileImage = ResolveRef(p.Source, p.Chef.ProfileImage)
	for _, c := range p.Cuisines {
		for _, d := range c.Dishes {
			d.Tags = DedupeTags(d.Tags)
			d.Image = ResolveRef(p.Source, d.Image)
		}
	}
}

// ResolveRef resolves an image reference found in the document at base.
// URLs are returned unchanged, as are absolute paths in a local document.
// In a remote document a root-relative path resolves against the base host.
func ResolveRef(base, ref string) string {
	if ref == "" || util.IsRemote(ref) {
		return ref
	}
	if util.IsRemote(base) {
		b, err := url.Parse(base)
		if err != nil {
			return ref
		}
		r, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return b.ResolveReference(r).String()
	}
	if base == "" || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(base), ref)
}
