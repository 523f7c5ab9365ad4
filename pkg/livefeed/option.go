package livefeed

import "time"

type hubOptions struct {
	bufferSize int
	writeWait  time.Duration
	pongWait   time.Duration
	pingPeriod time.Duration
}

// Option ...
type Option func(opts *hubOptions)

func newHubOptions(options ...Option) hubOptions {
	opts := hubOptions{
		bufferSize: 16,
		writeWait:  10 * time.Second,
		pongWait:   60 * time.Second,
		pingPeriod: 54 * time.Second,
	}
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// WithBufferSize for the number of pending events per subscriber
func WithBufferSize(size int) Option {
	return func(opts *hubOptions) {
		opts.bufferSize = size
	}
}

// WithPingPeriod ...
func WithPingPeriod(period time.Duration) Option {
	return func(opts *hubOptions) {
		opts.pingPeriod = period
		opts.pongWait = period * 10 / 9
	}
}
