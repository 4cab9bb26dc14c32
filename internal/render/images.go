package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// imageKeywords are fixed topic tags appended to every stock-photo request
const imageKeywords = "business,tech,meeting"

// imageFetchTimeout bounds the stock-photo request; generation never waits
// longer than this for an image.
const imageFetchTimeout = 10 * time.Second

// StockImageFetcher retrieves a stock photograph per content slide, keyed by
// slide index plus fixed keyword tags. The response body is treated as
// opaque image bytes.
type StockImageFetcher struct {
	endpoint string
	client   *http.Client
}

// NewStockImageFetcher creates a fetcher for the given endpoint, e.g.
// "https://source.unsplash.com/600x400".
func NewStockImageFetcher(endpoint string) *StockImageFetcher {
	return &StockImageFetcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: imageFetchTimeout},
	}
}

// Fetch downloads an image for the given slide index. Returns the bytes and
// a MIME type for embedding.
func (f *StockImageFetcher) Fetch(ctx context.Context, slideIndex int) ([]byte, string, error) {
	url := fmt.Sprintf("%s/?%d,%s", f.endpoint, slideIndex, imageKeywords)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}
