package vo

import "time"

type Response struct {
	URL         string
	Code        int
	Status      string
	ContentType string
	Body        []byte
	Duration    time.Duration
}
