package apis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Get issues a GET and unmarshals a 200 JSON body into out.
func Get(ctx context.Context, client *resty.Client, path string, params map[string]string, out any) error {
	request := client.R().SetContext(ctx)
	request.SetQueryParams(params)

	response, err := request.Get(path)
	if err != nil {
		return err
	}

	if response.StatusCode() != http.StatusOK {
		buf := &bytes.Buffer{}

		if err = json.Indent(buf, response.Body(), "", "  "); err != nil {
			buf.Reset()
			buf.Write(response.Body())
		}

		return fmt.Errorf("status code: %d\n%s", response.StatusCode(), buf.String())
	}

	if err = json.Unmarshal(response.Body(), out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}

	return nil
}

// FormatCoordinate writes a coordinate without trailing zeros.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
