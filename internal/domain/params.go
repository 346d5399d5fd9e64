package domain

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Params is an ordered set of query parameters. Values that carry no
// information (nil, nil pointers, the empty string) are never stored, so
// an unset filter is omitted from the request rather than sent empty.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set records key=value unless value is absent. Setting an absent value
// removes an earlier entry for the same key.
func (p *Params) Set(key string, value any) *Params {
	s, ok := formatParam(value)
	if !ok {
		p.Del(key)
		return p
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = s
	return p
}

// Del removes key from the set.
func (p *Params) Del(key string) {
	if _, exists := p.values[key]; !exists {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Get returns the stored value for key.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Len reports the number of stored parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Merge copies every entry of other into p, overwriting duplicates.
func (p *Params) Merge(other *Params) *Params {
	if other == nil {
		return p
	}
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
	return p
}

// Values converts the set to url.Values.
func (p *Params) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	for _, k := range p.keys {
		v.Add(k, p.values[k])
	}
	return v
}

func formatParam(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case *string:
		if v == nil {
			return "", false
		}
		return *v, *v != ""
	case int:
		return strconv.Itoa(v), true
	case *int:
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case *int64:
		if v == nil {
			return "", false
		}
		return strconv.FormatInt(*v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case decimal.Decimal:
		return v.String(), true
	case *decimal.Decimal:
		if v == nil {
			return "", false
		}
		return v.String(), true
	case fmt.Stringer:
		s := v.String()
		return s, s != ""
	default:
		s := fmt.Sprint(v)
		return s, s != ""
	}
}
