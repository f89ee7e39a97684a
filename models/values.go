package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Price accepts both the string form posted by editors and the numeric
// form stored records come back with.
type Price string

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*p = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = Price(n.String())
	return nil
}

func (p Price) Float() float64 {
	f, _ := strconv.ParseFloat(string(p), 64)
	return f
}

// Count behaves like Price for integer-ish fields (optionsQuantity).
type Count string

func (c *Count) UnmarshalJSON(b []byte) error {
	var p Price
	if err := p.UnmarshalJSON(b); err != nil {
		return err
	}
	*c = Count(p)
	return nil
}

func (c Count) Int() int {
	n, _ := strconv.Atoi(string(c))
	return n
}
