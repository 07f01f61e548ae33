package carousel

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// TopicCarouselImages carries each reshuffled image set.
const TopicCarouselImages = "carousel.images"

// Service reshuffles a fixed image set on a fixed period and publishes the
// selection on the event bus. It models the landing-view carousel: cosmetic
// interval-based refresh, not data synchronization. Stop cancels the ticker;
// the service is bound to the view lifecycle, never a persistent process.
type Service struct {
	images   []string
	interval time.Duration
	count    int
	bus      EventBus.Bus
	rnd      *rand.Rand

	mu      sync.Mutex
	cancel  context.CancelFunc
	current []string
}

func New(images []string, interval time.Duration, count int, bus EventBus.Bus) *Service {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if count <= 0 || count > len(images) {
		count = len(images)
	}
	return &Service{
		images:   images,
		interval: interval,
		count:    count,
		bus:      bus,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start begins the periodic reshuffle. Calling Start on a running service
// restarts it.
func (s *Service) Start(ctx context.Context) {
	s.Stop()
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.shuffle()
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				zap.L().Debug("carousel stopped")
				return
			case <-ticker.C:
				s.shuffle()
			}
		}
	}()
}

// Stop cancels the running reshuffle loop, if any.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
}

// Current returns the last published selection.
func (s *Service) Current() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.current))
	copy(out, s.current)
	return out
}

func (s *Service) shuffle() {
	picked := make([]string, len(s.images))
	copy(picked, s.images)
	s.mu.Lock()
	s.rnd.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	picked = picked[:s.count]
	s.current = picked
	s.mu.Unlock()
	if s.bus != nil {
		s.bus.Publish(TopicCarouselImages, picked)
	}
}
