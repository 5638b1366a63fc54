package cache

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteInvalidator forwards tag invalidations to an external cache
// service (e.g. a CDN or edge cache fronting the API). Delivery is
// best-effort: failures are logged and never affect the committed data.
type RemoteInvalidator struct {
	client *resty.Client
	url    string
}

// NewRemoteInvalidator creates an invalidator posting to the given endpoint
func NewRemoteInvalidator(url string) *RemoteInvalidator {
	client := resty.New()
	client.SetTimeout(5 * time.Second)

	return &RemoteInvalidator{
		client: client,
		url:    url,
	}
}

// Invalidate posts the tags to the remote endpoint
func (r *RemoteInvalidator) Invalidate(tags []string) {
	resp, err := r.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{"tags": tags}).
		Post(r.url)

	if err != nil {
		log.Printf("Cache service invalidation failed: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Cache service invalidation returned status %d", resp.StatusCode())
	}
}
