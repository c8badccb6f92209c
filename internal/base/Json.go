package base

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
)

/***************************************
 * JSON
 ***************************************/

type JsonOptions struct {
	PrettyPrint bool
}

type JsonOptionFunc = func(*JsonOptions)

func OptionJsonPrettyPrint(enabled bool) JsonOptionFunc {
	return func(jo *JsonOptions) {
		jo.PrettyPrint = enabled
	}
}

func JsonSerialize(x interface{}, dst io.Writer, options ...JsonOptionFunc) error {
	var opts JsonOptions
	for _, it := range options {
		it(&opts)
	}

	encoder := json.NewEncoder(dst)
	if opts.PrettyPrint {
		encoder.SetIndent("", "  ")
	}

	return encoder.EncodeWithOption(x,
		json.DisableHTMLEscape(),
		json.DisableNormalizeUTF8())
}

func JsonDeserialize(x interface{}, src io.Reader) error {
	return json.NewDecoder(src).Decode(x)
}

func PrettyPrint(x interface{}) string {
	buf := bytes.Buffer{}
	if err := JsonSerialize(x, &buf, OptionJsonPrettyPrint(true)); err != nil {
		return err.Error()
	}
	return buf.String()
}
