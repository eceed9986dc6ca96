package backend

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/20after4/configdir"
	"github.com/boxes-ltd/imaging"
	"github.com/cenkalti/dominantcolor"
	"github.com/chefolio/chefolio/backend/util"
	"github.com/hashicorp/go-retryablehttp"
)

// How long a thumbnail of a remote image is served from disk before it is re-fetched.
const CachedImageValidTime = 24 * time.Hour

const (
	ThumbnailSize = 600

	thumbnailJpegQuality      = 85
	defaultDiskCacheSizeBytes = 50 * 1_048_576
	remoteImageTimeout        = 30 * time.Second
)

var errNoImage = errors.New("no image reference")

// The ImageManager is responsible for retrieving and serving dish and profile images to the UI layer.
// It maintains an in-memory cache of recently used thumbnails for immediate future access,
// and a larger on-disc cache of thumbnails so remote images are not re-downloaded on every launch.
type ImageManager struct {
	ctx            context.Context
	baseCacheDir   string
	thumbnailCache ImageCache
	client         *retryablehttp.Client

	colorsLock sync.Mutex
	colors     map[string]color.RGBA

	maxOnDiskCacheSizeBytes    atomic.Int64
	filesWrittenSinceLastPrune atomic.Bool
}

func NewImageManager(ctx context.Context, baseCacheDir string, remoteRetries int) *ImageManager {
	thumbDir := filepath.Join(baseCacheDir, "thumbnails")
	if err := configdir.MakePath(thumbDir); err != nil {
		log.Println("failed to create thumbnail cache dir")
		baseCacheDir = ""
	}
	i := &ImageManager{
		ctx:          ctx,
		baseCacheDir: baseCacheDir,
		thumbnailCache: ImageCache{
			MinSize:    24,
			MaxSize:    150,
			DefaultTTL: 2 * time.Minute,
		},
		client: util.NewHTTPClient(remoteRetries, remoteImageTimeout),
		colors: make(map[string]color.RGBA),
	}
	i.maxOnDiskCacheSizeBytes.Store(defaultDiskCacheSizeBytes)
	i.thumbnailCache.OnEvictTaskRan = i.pruneOnDiskCache
	i.thumbnailCache.Init(ctx, 2*time.Minute)
	return i
}

func (i *ImageManager) SetMaxOnDiskCacheSizeBytes(size int64) {
	i.maxOnDiskCacheSizeBytes.Store(size)
}

// ClearMemoryCache drops all decoded thumbnails and dominant colors,
// so that images changed on disk are picked up after a data reload.
func (i *ImageManager) ClearMemoryCache() {
	i.thumbnailCache.Clear()
	i.colorsLock.Lock()
	clear(i.colors)
	i.colorsLock.Unlock()
}

func (i *ImageManager) GetThumbnailFromCache(ref string) (image.Image, bool) {
	img, err := i.thumbnailCache.GetExtendTTL(ref, i.thumbnailCache.DefaultTTL)
	if err == nil && img != nil {
		return img, true
	}
	return nil, false
}

// GetThumbnail returns the image at ref (a local path or http(s) URL)
// scaled to fit within ThumbnailSize x ThumbnailSize.
func (i *ImageManager) GetThumbnail(ctx context.Context, ref string) (image.Image, error) {
	if ref == "" {
		return nil, errNoImage
	}
	if img, ok := i.GetThumbnailFromCache(ref); ok {
		return img, nil
	}
	if img, ok := i.loadFromDiskCache(ref); ok {
		i.thumbnailCache.Set(ref, img)
		return img, nil
	}
	return i.fetchAndCacheThumbnail(ctx, ref)
}

// GetThumbnailAsync loads the thumbnail in the background and calls cb with the result.
// cb is not called if the returned cancel func is invoked before the load completes.
func (i *ImageManager) GetThumbnailAsync(ref string, cb func(image.Image, error)) context.CancelFunc {
	ctx, cancel := context.WithCancel(i.ctx)
	go func() {
		defer cancel()
		img, err := i.GetThumbnail(ctx, ref)
		if ctx.Err() == nil {
			cb(img, err)
		}
	}()
	return cancel
}

// DominantColor returns the most prominent color of the thumbnail for ref,
// if the thumbnail is already loaded.
func (i *ImageManager) DominantColor(ref string) (color.RGBA, bool) {
	i.colorsLock.Lock()
	c, ok := i.colors[ref]
	i.colorsLock.Unlock()
	if ok {
		return c, true
	}
	img, ok := i.GetThumbnailFromCache(ref)
	if !ok {
		return color.RGBA{}, false
	}
	c = dominantcolor.Find(img)
	i.colorsLock.Lock()
	i.colors[ref] = c
	i.colorsLock.Unlock()
	return c, true
}

func (i *ImageManager) loadFromDiskCache(ref string) (image.Image, bool) {
	path := i.filePathForThumbnail(ref)
	if path == "" {
		return nil, false
	}
	stat, err := os.Stat(path)
	if err != nil || i.isStale(ref, stat.ModTime()) {
		return nil, false
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, false
	}
	return img, true
}

// a local source edited after its thumbnail was written, or a remote
// source whose thumbnail is older than CachedImageValidTime, is stale
func (i *ImageManager) isStale(ref string, cachedAt time.Time) bool {
	if util.IsRemote(ref) {
		return time.Since(cachedAt) > CachedImageValidTime
	}
	s, err := os.Stat(ref)
	return err != nil || s.ModTime().After(cachedAt)
}

func (i *ImageManager) fetchAndCacheThumbnail(ctx context.Context, ref string) (image.Image, error) {
	img, err := i.loadSource(ctx, ref)
	if err != nil {
		return nil, err
	}
	thumb := imaging.Fit(img, ThumbnailSize, ThumbnailSize, imaging.Lanczos)
	if path := i.filePathForThumbnail(ref); path != "" {
		_ = i.writeJpeg(thumb, path)
	}
	i.thumbnailCache.Set(ref, thumb)
	return thumb, nil
}

func (i *ImageManager) loadSource(ctx context.Context, ref string) (image.Image, error) {
	if util.IsRemote(ref) {
		b, err := util.FetchURL(ctx, i.client, ref)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", ref, err)
		}
		return imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := imaging.Decode(util.NewCancellableReader(ctx, f), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ref, err)
	}
	return img, nil
}

func (i *ImageManager) filePathForThumbnail(ref string) string {
	if i.baseCacheDir == "" {
		return ""
	}
	sum := sha1.Sum([]byte(ref))
	return filepath.Join(i.baseCacheDir, "thumbnails", hex.EncodeToString(sum[:])+".jpg")
}

func (i *ImageManager) writeJpeg(img image.Image, path string) error {
	f, err := os.Create(path)
	if err == nil {
		defer f.Close()
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: thumbnailJpegQuality}); err != nil {
			log.Printf("failed to cache image: %s", err.Error())
			return err
		}
	}
	i.filesWrittenSinceLastPrune.Store(true)
	return err
}

func (im *ImageManager) pruneOnDiskCache() {
	if !im.filesWrittenSinceLastPrune.Swap(false) || im.baseCacheDir == "" {
		return // no new thumbnails cached since last run, no need to walk dir
	}

	// modTime is used as a proxy for last access, since thumbnails
	// are rewritten whenever their source changes or expires
	type fileInfo struct {
		path    string
		size    int64
		modTime int64
	}
	var all []fileInfo
	var totalSize int64
	filepath.WalkDir(filepath.Join(im.baseCacheDir, "thumbnails"), func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".jpg") {
			return nil
		}
		if info, err := d.Info(); err == nil {
			s := info.Size()
			all = append(all, fileInfo{path: path, size: s, modTime: info.ModTime().UnixMilli()})
			totalSize += s
		}
		return nil
	})

	maxSize := im.maxOnDiskCacheSizeBytes.Load()
	if totalSize > maxSize {
		// delete from least recently modified until size is under threshold
		sort.Slice(all, func(i, j int) bool {
			return all[i].modTime < all[j].modTime
		})
		for i := 0; i < len(all) && totalSize > maxSize; i++ {
			if err := os.Remove(all[i].path); err == nil {
				totalSize -= all[i].size
			}
		}
	}
}
