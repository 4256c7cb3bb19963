package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Result is the JSON body returned to the caller.
type Result struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

const (
	resultSuccess = "Success"
	resultFailed  = "Failed"
)

var responseHeaders = map[string]string{
	"Content-Type":                "application/json",
	"Access-Control-Allow-Origin": "*",
}

// response formats status and body as an API Gateway HTTP API response carrying
// the fixed JSON and CORS headers.
func response(status int, body Result) events.APIGatewayV2HTTPResponse {
	// Marshalling a struct of strings cannot fail.
	b, _ := json.Marshal(body)

	headers := make(map[string]string, len(responseHeaders))
	for k, v := range responseHeaders {
		headers[k] = v
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(b),
	}
}

func success() events.APIGatewayV2HTTPResponse {
	return response(http.StatusOK, Result{Result: resultSuccess})
}

func failure(err error) events.APIGatewayV2HTTPResponse {
	return response(http.StatusInternalServerError, Result{Result: resultFailed, Error: err.Error()})
}
