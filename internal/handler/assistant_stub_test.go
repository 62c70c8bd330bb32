package handler

import "context"

type assistantStub struct {
	data    map[string]any
	err     error
	calls   int
	path    string
	payload any
}

func (s *assistantStub) PostJSON(ctx context.Context, path string, payload any, requestID string) (map[string]any, error) {
	s.calls++
	s.path = path
	s.payload = payload
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}
