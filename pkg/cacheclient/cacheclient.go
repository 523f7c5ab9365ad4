package cacheclient

import (
	"time"

	"github.com/QuangTung97/go-memcache/memcache"
)

//go:generate moq -out cacheclient_mocks.go . CacheClient Pipeline

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when entry is found
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when entry is not found but lease is granted
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when entry is not found and lease is not granted
	LeaseGetTypeRejected LeaseGetType = 3
)

// GetOutput ...
type GetOutput struct {
	Found bool
	Data  []byte
}

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

// CacheClient for remote cache (like memcached)
type CacheClient interface {
	// Pipeline can NOT be shared between goroutines
	Pipeline() Pipeline
}

// Pipeline for batching cache requests
type Pipeline interface {
	Get(key string) func() (GetOutput, error)
	LeaseGet(key string) func() (LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error
	Delete(key string) func() error
	Finish()
}

// Client ...
type Client struct {
	client *memcache.Client
}

type pipelineImpl struct {
	pipe *memcache.Pipeline
}

var _ CacheClient = &Client{}

var _ Pipeline = pipelineImpl{}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Pipeline ...
func (c *Client) Pipeline() Pipeline {
	return pipelineImpl{
		pipe: c.client.Pipeline(),
	}
}

// Get ...
func (p pipelineImpl) Get(key string) func() (GetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{})
	return func() (GetOutput, error) {
		resp, err := fn()
		if err != nil {
			return GetOutput{}, err
		}
		if resp.Type == memcache.MGetResponseTypeVA {
			return GetOutput{
				Found: true,
				Data:  resp.Data,
			}, nil
		}
		return GetOutput{}, nil
	}
}

// LeaseGet ...
func (p pipelineImpl) LeaseGet(key string) func() (LeaseGetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{
		N:   5,
		CAS: true,
	})
	return func() (LeaseGetOutput, error) {
		resp, err := fn()
		if err != nil {
			return LeaseGetOutput{}, err
		}
		if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
			return LeaseGetOutput{
				Type: LeaseGetTypeRejected,
			}, nil
		}

		if resp.Flags&memcache.MGetFlagW != 0 {
			return LeaseGetOutput{
				Type:    LeaseGetTypeGranted,
				LeaseID: resp.CAS,
			}, nil
		}

		return LeaseGetOutput{
			Type: LeaseGetTypeOK,
			Data: resp.Data,
		}, nil
	}
}

// LeaseSet ...
func (p pipelineImpl) LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error {
	fn := p.pipe.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: ttl,
	})
	return func() error {
		_, err := fn()
		return err
	}
}

// Delete ...
func (p pipelineImpl) Delete(key string) func() error {
	fn := p.pipe.MDel(key, memcache.MDelOptions{})
	return func() error {
		_, err := fn()
		return err
	}
}

// Finish ...
func (p pipelineImpl) Finish() {
	p.pipe.Finish()
}
