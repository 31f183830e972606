package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Carnet número de carnet de identidad. En JSON acepta texto o número.
type Carnet string

// UnmarshalJSON admite "123456" y 123456; null deja el valor vacío.
func (c *Carnet) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Carnet(strings.TrimSpace(s))
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return errors.New("numeroCarnet debe ser texto o número")
	}
	*c = Carnet(n.String())
	return nil
}

// String devuelve el carnet sin espacios.
func (c Carnet) String() string { return strings.TrimSpace(string(c)) }
