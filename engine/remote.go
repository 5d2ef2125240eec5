package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	nhttp "github.com/chaos-io/rembg/util/http"

	"github.com/chaos-io/rembg"
)

const predictPath = "/api/v1/predict"

// Remote delegates inference to an HTTP service that accepts a tensor
// and returns the raw probability map, both as flat JSON arrays with
// an explicit shape. Stateless, so it is safe for concurrent calls.
type Remote struct {
	url string
	cli nhttp.IClient
}

// NewRemote points at an inference service base URL, e.g.
// http://127.0.0.1:8188.
func NewRemote(baseURL string) *Remote {
	return &Remote{
		url: strings.TrimRight(baseURL, "/") + predictPath,
		cli: nhttp.NewHTTPClient(),
	}
}

type predictPayload struct {
	Shape []int64   `json:"shape"`
	Data  []float32 `json:"data"`
}

func (r *Remote) Predict(ctx context.Context, input *rembg.Tensor) (*rembg.RawMap, error) {
	resp := predictPayload{}
	reqParam := &nhttp.RequestParam{
		RequestURI: r.url,
		Method:     "POST",
		Header:     map[string]string{"Content-Type": "application/json"},
		Body:       predictPayload{Shape: input.Shape(), Data: input.Data},
		Response:   &resp,
	}
	if err := r.cli.DoHTTPRequest(ctx, reqParam); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	slog.Debug("remote predict", "url", r.url, "shape", resp.Shape)

	return rembg.NewRawMap(resp.Shape, resp.Data)
}

func (r *Remote) Close() error {
	return nil
}
