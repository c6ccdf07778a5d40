package headers

import "net/http"

func SetUserAgent(request *http.Request, userAgent string) {
	request.Header.Set("User-Agent", userAgent)
}
