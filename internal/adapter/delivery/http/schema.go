package http

import (
	"fmt"
	"strings"

	"github.com/vadimbarashkov/shortener/internal/entity"
)

const welcomeMessage = "Welcome to the URL shortener API :)"

// urlRequest represents the structure for a request to shorten a URL.
type urlRequest struct {
	TargetURL string `json:"target_url" validate:"required,http_url"`
}

// urlInfoResponse is the view of a URL returned to its owner. It is built
// from entity.URL and never written back to the store.
type urlInfoResponse struct {
	TargetURL string `json:"target_url"`
	IsActive  bool   `json:"is_active"`
	Clicks    int64  `json:"clicks"`
	URL       string `json:"url"`
	AdminURL  string `json:"admin_url"`
}

func shortURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}

func adminURL(baseURL, secretKey string) string {
	return strings.TrimRight(baseURL, "/") + "/admin/" + secretKey
}

func toURLInfoResponse(baseURL string, url *entity.URL) urlInfoResponse {
	return urlInfoResponse{
		TargetURL: url.TargetURL,
		IsActive:  url.IsActive,
		Clicks:    url.Clicks,
		URL:       shortURL(baseURL, url.Key),
		AdminURL:  adminURL(baseURL, url.SecretKey),
	}
}

// detailResponse is the body of every error and of plain acknowledgements.
type detailResponse struct {
	Detail string `json:"detail"`
}

// Predefined responses for common scenarios.
var (
	emptyRequestBodyResponse = detailResponse{
		Detail: "empty request body",
	}

	invalidRequestBodyResponse = detailResponse{
		Detail: "invalid request body",
	}

	requestBodyTooLargeResponse = detailResponse{
		Detail: "request body too large",
	}

	invalidURLResponse = detailResponse{
		Detail: "Your provided URL is not valid",
	}

	serverErrorResponse = detailResponse{
		Detail: "Internal Server Error",
	}
)

func notFoundResponse(requestedURL string) detailResponse {
	return detailResponse{
		Detail: fmt.Sprintf("URL '%s' doesn't exist", requestedURL),
	}
}

func revokedResponse(url *entity.URL) detailResponse {
	return detailResponse{
		Detail: fmt.Sprintf("Successfully deleted shortened URL for '%s'", url.TargetURL),
	}
}
