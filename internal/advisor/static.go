package advisor

import "context"

// Static returns the same reply for every message. Used by tests and the
// offline demo mode.
type Static struct {
	Response string
}

func (s Static) Name() string {
	return "static"
}

func (s Static) Reply(context.Context, string, []Message) (string, error) {
	return s.Response, nil
}
