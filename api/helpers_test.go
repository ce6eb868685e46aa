package api_test

import (
	"net/http/httptest"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func jsonDecode(res *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(res.Body.Bytes(), v)
}
