package api

import "net/url"

// RequestOption tweaks a single outgoing request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	query url.Values
}

// WithParam adds one query parameter.
func WithParam(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}
		o.query.Set(key, value)
	}
}

// WithQuery merges a full set of query parameters.
func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}
		for k, vs := range q {
			for _, v := range vs {
				o.query.Add(k, v)
			}
		}
	}
}
