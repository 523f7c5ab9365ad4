package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/cacheclient"
	"github.com/QuangTung97/donation-ledger/pkg/metrics"
	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/QuangTung97/donation-ledger/repository"
	"go.uber.org/zap"
)

// ErrNotFound ...
var ErrNotFound = errors.New("campaign not found")

//go:generate moq -out progress_mocks.go . IService

// IService ...
type IService interface {
	Get(ctx context.Context, campaignID int64) (model.CampaignProgress, error)
	Invalidate(ctx context.Context, campaignID int64)
}

var _ IService = &Service{}

// LocalCache for the in process layer
type LocalCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttlSeconds int)
	Delete(key string)
}

// Service computes campaign progress server side, behind a two level read-through cache.
// The local layer is per process and only bounded by its short TTL,
// the remote layer is shared and deleted on every recorded donation.
type Service struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	itemRepo     repository.CampaignItem

	local  LocalCache
	remote cacheclient.CacheClient // nil when no memcached is configured

	opts serviceOptions
}

// NewService ...
func NewService(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	itemRepo repository.CampaignItem,
	local LocalCache,
	remote cacheclient.CacheClient,
	options ...Option,
) *Service {
	return &Service{
		provider:     provider,
		campaignRepo: campaignRepo,
		itemRepo:     itemRepo,

		local:  local,
		remote: remote,

		opts: newServiceOptions(options...),
	}
}

func cacheKey(campaignID int64) string {
	return fmt.Sprintf("progress:%d", campaignID)
}

func (s *Service) load(ctx context.Context, campaignID int64) (model.CampaignProgress, error) {
	ctx = s.provider.Readonly(ctx)

	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return model.CampaignProgress{}, fmt.Errorf("get campaign: %w", err)
	}
	if !campaign.Valid {
		return model.CampaignProgress{}, fmt.Errorf("%w: %d", ErrNotFound, campaignID)
	}

	items, err := s.itemRepo.ListItemsByCampaign(ctx, campaignID)
	if err != nil {
		return model.CampaignProgress{}, fmt.Errorf("list items: %w", err)
	}

	c := campaign.Campaign
	result := model.CampaignProgress{
		CampaignID: c.ID,
		Title:      c.Title,
		NgoName:    c.NgoName,
		Goal:       c.Goal,
		Raised:     c.Raised,
		Donors:     c.Donors,
		Percent:    model.ProgressPercent(c.Raised, c.Goal),
		Items:      []model.ItemProgress{},
	}
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		result.Items = append(result.Items, model.ItemProgress{
			ItemID:        item.ID,
			Name:          item.Name,
			Priority:      item.Priority,
			TargetAmount:  item.TargetAmount,
			CurrentAmount: item.CurrentAmount,
			Percent:       model.ProgressPercent(item.CurrentAmount, item.TargetAmount),
		})
	}
	return result, nil
}

func decode(data []byte) (model.CampaignProgress, bool) {
	var result model.CampaignProgress
	if err := json.Unmarshal(data, &result); err != nil {
		return model.CampaignProgress{}, false
	}
	return result, true
}

func (s *Service) loadAndEncode(ctx context.Context, campaignID int64) (model.CampaignProgress, []byte, error) {
	result, err := s.load(ctx, campaignID)
	if err != nil {
		return model.CampaignProgress{}, nil, err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return model.CampaignProgress{}, nil, err
	}
	return result, data, nil
}

// Get ...
func (s *Service) Get(ctx context.Context, campaignID int64) (model.CampaignProgress, error) {
	key := cacheKey(campaignID)

	if data, ok := s.local.Get(key); ok {
		if result, ok := decode(data); ok {
			metrics.ProgressCacheAccess.WithLabelValues("local").Inc()
			return result, nil
		}
	}

	if s.remote == nil {
		return s.getFromDB(ctx, key, campaignID)
	}
	return s.getFromRemote(ctx, key, campaignID)
}

func (s *Service) getFromDB(ctx context.Context, key string, campaignID int64) (model.CampaignProgress, error) {
	metrics.ProgressCacheAccess.WithLabelValues("db").Inc()

	result, data, err := s.loadAndEncode(ctx, campaignID)
	if err != nil {
		return model.CampaignProgress{}, err
	}
	s.local.Set(key, data, s.opts.localTTLSeconds)
	return result, nil
}

func (s *Service) getFromRemote(ctx context.Context, key string, campaignID int64) (model.CampaignProgress, error) {
	pipe := s.remote.Pipeline()
	defer pipe.Finish()

	waitDurations := s.opts.waitLeaseDurations
	for {
		output, err := pipe.LeaseGet(key)()
		if err != nil {
			otellib.Extract(ctx).Warn("Progress cache lease get failed", zap.String("key", key), zap.Error(err))
			return s.getFromDB(ctx, key, campaignID)
		}

		switch output.Type {
		case cacheclient.LeaseGetTypeOK:
			if result, ok := decode(output.Data); ok {
				metrics.ProgressCacheAccess.WithLabelValues("remote").Inc()
				s.local.Set(key, output.Data, s.opts.localTTLSeconds)
				return result, nil
			}
			_ = pipe.Delete(key)()
			return s.getFromDB(ctx, key, campaignID)

		case cacheclient.LeaseGetTypeGranted:
			metrics.ProgressCacheAccess.WithLabelValues("db").Inc()

			result, data, err := s.loadAndEncode(ctx, campaignID)
			if err != nil {
				_ = pipe.Delete(key)()
				return model.CampaignProgress{}, err
			}
			if err := pipe.LeaseSet(key, data, output.LeaseID, s.opts.remoteTTL)(); err != nil {
				otellib.Extract(ctx).Warn("Progress cache lease set failed", zap.String("key", key), zap.Error(err))
			}
			s.local.Set(key, data, s.opts.localTTLSeconds)
			return result, nil

		default:
			if len(waitDurations) == 0 {
				return s.getFromDB(ctx, key, campaignID)
			}
			s.opts.sleep(waitDurations[0])
			waitDurations = waitDurations[1:]
		}
	}
}

// Invalidate drops the cached progress of a campaign
func (s *Service) Invalidate(ctx context.Context, campaignID int64) {
	key := cacheKey(campaignID)
	s.local.Delete(key)

	if s.remote == nil {
		return
	}

	pipe := s.remote.Pipeline()
	defer pipe.Finish()

	if err := pipe.Delete(key)(); err != nil {
		otellib.Extract(ctx).Warn("Progress cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

type serviceOptions struct {
	waitLeaseDurations []time.Duration
	localTTLSeconds    int
	remoteTTL          uint32
	sleep              func(d time.Duration)
}

func newServiceOptions(options ...Option) serviceOptions {
	opts := serviceOptions{
		waitLeaseDurations: []time.Duration{
			10 * time.Millisecond,
			20 * time.Millisecond,
			50 * time.Millisecond,
		},
		localTTLSeconds: 2,
		remoteTTL:       300,
		sleep:           time.Sleep,
	}
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *serviceOptions)

// WithWaitLeaseDurations ...
func WithWaitLeaseDurations(durations []time.Duration) Option {
	return func(opts *serviceOptions) {
		opts.waitLeaseDurations = durations
	}
}

// WithLocalTTL in seconds
func WithLocalTTL(seconds int) Option {
	return func(opts *serviceOptions) {
		opts.localTTLSeconds = seconds
	}
}

// WithRemoteTTL in seconds
func WithRemoteTTL(seconds uint32) Option {
	return func(opts *serviceOptions) {
		opts.remoteTTL = seconds
	}
}

// WithSleepFunc ...
func WithSleepFunc(sleep func(d time.Duration)) Option {
	return func(opts *serviceOptions) {
		opts.sleep = sleep
	}
}
