package util

import (
	"context"
	"image"
	"log"
	"sync"

	"fyne.io/fyne/v2"
)

// ThumbnailLoader is a utility type that exposes a single API to load
// a dish or profile thumbnail by image reference. If the image is immediately
// available in the cache, OnLoaded will be called immediately. If it is not,
// OnBeforeLoad will be called first, then OnLoaded will be called on the
// UI goroutine once the image is available.
// Any subsequent calls to Load will cancel the previous load if not yet completed.
type ThumbnailLoader struct {
	mu             sync.Mutex
	prevLoadCancel context.CancelFunc
	im             ImageFetcher

	OnBeforeLoad func()
	OnLoaded     func(image.Image)
	OnError      func(error)
}

// Image backend interface for the ThumbnailLoader
// impl: backend.ImageManager
type ImageFetcher interface {
	GetThumbnailFromCache(string) (image.Image, bool)
	GetThumbnailAsync(string, func(image.Image, error)) context.CancelFunc
}

func NewThumbnailLoader(im ImageFetcher, onLoaded func(image.Image)) *ThumbnailLoader {
	return &ThumbnailLoader{im: im, OnLoaded: onLoaded}
}

func (i *ThumbnailLoader) Load(ref string) {
	i.Cancel()
	if ref == "" {
		i.callOnLoaded(nil)
		return
	}
	if img, ok := i.im.GetThumbnailFromCache(ref); ok {
		i.callOnLoaded(img)
		return
	}
	if i.OnBeforeLoad != nil {
		i.OnBeforeLoad()
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.prevLoadCancel = i.im.GetThumbnailAsync(ref, func(img image.Image, err error) {
		if err != nil {
			log.Printf("Error loading image %s: %s", ref, err.Error())
			if i.OnError != nil {
				fyne.Do(func() { i.OnError(err) })
			}
			return
		}
		fyne.Do(func() { i.callOnLoaded(img) })
	})
}

// Cancel stops any load in progress. OnLoaded will not be called for it.
func (i *ThumbnailLoader) Cancel() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.prevLoadCancel != nil {
		i.prevLoadCancel()
		i.prevLoadCancel = nil
	}
}

func (i *ThumbnailLoader) callOnLoaded(im image.Image) {
	if i.OnLoaded != nil {
		i.OnLoaded(im)
	}
}
