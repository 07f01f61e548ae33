package webserver

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

// JsonSerializer swaps echo's encoding/json codec for json-iterator.
type JsonSerializer struct {
	json jsoniter.API
}

func NewJsonSerializer() *JsonSerializer {
	return &JsonSerializer{json: jsoniter.ConfigCompatibleWithStandardLibrary}
}

func (s *JsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := s.json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *JsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := s.json.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("unable to parse request body: %v", err)).SetInternal(err)
	}
	return nil
}
