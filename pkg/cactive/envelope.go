package cactive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// envelope is the response wrapper common to all endpoints.
type envelope[T any] struct {
	Success bool    `json:"success"`
	ID      string  `json:"id"`
	Data    *T      `json:"data"`
	Errors  []Error `json:"errors"`
}

// fetch performs a GET request on the endpoint path given with
// the query parameters given, and decodes the response envelope.
func fetch[T any](ctx context.Context, client *Client,
	endpointPath string, values url.Values) (data T, err error) {
	err = client.limiter.Wait(ctx)
	if err != nil {
		return data, fmt.Errorf("waiting on rate limiter: %w", err)
	}

	u := client.baseURL
	u.Path += endpointPath
	u.RawQuery = values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return data, fmt.Errorf("creating http request: %w", err)
	}
	setHeaders(request)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return data, fmt.Errorf("doing http request: %w", newTransportError(err))
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return data, fmt.Errorf("reading response body: %w", newTransportError(err))
	}

	var decoded envelope[T]
	err = json.Unmarshal(body, &decoded)
	if err != nil {
		if response.StatusCode < http.StatusOK ||
			response.StatusCode >= http.StatusMultipleChoices {
			return data, fmt.Errorf("%w: %d: %s", ErrHTTPStatusNotValid,
				response.StatusCode, toSingleLine(string(body)))
		}
		return data, fmt.Errorf("json decoding response body: %w",
			newTransportError(err))
	}

	if !decoded.Success {
		if len(decoded.Errors) == 0 {
			return data, fmt.Errorf("%w: for request id %s",
				ErrNoErrorsInResponse, decoded.ID)
		}
		return data, joinErrors(decoded.Errors)
	}

	if decoded.Data == nil {
		return data, fmt.Errorf("%w: for request id %s",
			ErrNoDataInResponse, decoded.ID)
	}

	return *decoded.Data, nil
}

func toSingleLine(s string) (singleLine string) {
	singleLine = strings.TrimSpace(s)
	singleLine = strings.ReplaceAll(singleLine, "\n", " ")
	singleLine = strings.ReplaceAll(singleLine, "\r", "")
	return singleLine
}
