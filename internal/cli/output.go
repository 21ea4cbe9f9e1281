package cli

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// print writes v in the selected output format. YAML keys follow the JSON field names.
func (a *App) print(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "encode output")
	}
	if a.output == "yaml" {
		var doc any
		if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
			return errors.WithMessage(err, "encode output")
		}
		if data, err = yaml.Marshal(doc); err != nil {
			return errors.WithMessage(err, "encode yaml output")
		}
		_, err = w.Write(data)
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
